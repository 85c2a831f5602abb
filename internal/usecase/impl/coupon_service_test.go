package impl

import (
	"context"
	"testing"
	"time"

	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/infra/persistence/memory"
	mockSvc "courseadmin/internal/mocks/service"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCouponService(t *testing.T) (*couponService, *mockSvc.MockQRCodeService, *testFixture) {
	t.Helper()
	f := newTestFixture(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc := NewCouponService(CouponServiceParams{
		CouponRepo:    memory.NewCouponRepository(f.db),
		QRCodeService: qr,
		Publisher:     f.publisher,
		Config:        f.config,
		Logger:        f.logger,
	})

	return svc.(*couponService), qr, f
}

func couponInput(code string) *usecase.CreateCouponInput {
	return &usecase.CreateCouponInput{
		Code:          code,
		Type:          entity.DiscountPercentage,
		DiscountValue: 10,
		StartDate:     date(2024, 1, 1),
		ExpireDate:    date(2024, 12, 31),
	}
}

func TestCouponService_CreateCoupon_NormalizesAndDefaults(t *testing.T) {
	svc, _, f := createTestCouponService(t)

	coupon, err := svc.CreateCoupon(context.Background(), couponInput("  save10 "))

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Equal(t, 1, coupon.UsageLimitPerUser)
	assert.True(t, coupon.IsActive)
	assert.NotNil(t, coupon.ApplicableCourseIDs)
	assert.Equal(t, []string{"created"}, f.publisher.actions(resourceCoupon))
}

func TestCouponService_CreateCoupon_CodeIsCaseInsensitiveUnique(t *testing.T) {
	svc, _, f := createTestCouponService(t)
	ctx := context.Background()

	_, err := svc.CreateCoupon(ctx, couponInput("save10"))
	require.NoError(t, err)

	_, err = svc.CreateCoupon(ctx, couponInput("SAVE10"))

	require.ErrorIs(t, err, domainerrors.ErrCouponCodeTaken)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Len(t, f.publisher.actions(resourceCoupon), 1)
}

func TestCouponService_CreateCoupon_DateOrdering(t *testing.T) {
	svc, _, _ := createTestCouponService(t)
	ctx := context.Background()

	inverted := couponInput("JUNE")
	inverted.StartDate, inverted.ExpireDate = date(2024, 6, 1), date(2024, 5, 1)
	_, err := svc.CreateCoupon(ctx, inverted)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "expireDate", verr.Issues[0].Field)
	assert.Contains(t, verr.Issues[0].Message, "expireDate")

	sameDay := couponInput("ONEDAY")
	sameDay.StartDate, sameDay.ExpireDate = date(2024, 6, 1), date(2024, 6, 1)
	_, err = svc.CreateCoupon(ctx, sameDay)
	assert.NoError(t, err)
}

func TestCouponService_CreateCoupon_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.CreateCouponInput)
		field   string
		message string
	}{
		{
			name:    "missing code",
			mutate:  func(in *usecase.CreateCouponInput) { in.Code = "   " },
			field:   "code",
			message: "Coupon code is required.",
		},
		{
			name:    "unknown type",
			mutate:  func(in *usecase.CreateCouponInput) { in.Type = "bogo" },
			field:   "type",
			message: "type must be one of: percentage, fixed",
		},
		{
			name:   "negative discount",
			mutate: func(in *usecase.CreateCouponInput) { in.Type, in.DiscountValue = entity.DiscountFixed, -1 },
			field:  "discountValue",
		},
		{
			name:   "percentage over 100",
			mutate: func(in *usecase.CreateCouponInput) { in.DiscountValue = 150 },
			field:  "discountValue",
		},
		{
			name:   "zero usage limit",
			mutate: func(in *usecase.CreateCouponInput) { in.UsageLimitPerUser = ptr(0) },
			field:  "usageLimitPerUser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestCouponService(t)
			input := couponInput("RULES")
			tt.mutate(input)

			_, err := svc.CreateCoupon(context.Background(), input)

			var verr *domainerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tt.field, verr.Issues[0].Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, verr.Issues[0].Message)
			}
		})
	}
}

func TestCouponService_UpdateCoupon_UniquenessExcludesSelf(t *testing.T) {
	svc, _, _ := createTestCouponService(t)
	ctx := context.Background()

	first, err := svc.CreateCoupon(ctx, couponInput("FIRST"))
	require.NoError(t, err)
	second, err := svc.CreateCoupon(ctx, couponInput("SECOND"))
	require.NoError(t, err)

	updated, err := svc.UpdateCoupon(ctx, first.ID, &usecase.UpdateCouponInput{
		Code:        ptr("first"),
		Description: ptr("ten percent off"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ten percent off", updated.Description)

	_, err = svc.UpdateCoupon(ctx, second.ID, &usecase.UpdateCouponInput{Code: ptr("First")})
	require.ErrorIs(t, err, domainerrors.ErrCouponCodeTaken)
}

func TestCouponService_UpdateCoupon_MergedDatesAreChecked(t *testing.T) {
	svc, _, _ := createTestCouponService(t)
	ctx := context.Background()

	coupon, err := svc.CreateCoupon(ctx, couponInput("MERGE"))
	require.NoError(t, err)

	// only expireDate in the patch, but it falls before the stored startDate
	_, err = svc.UpdateCoupon(ctx, coupon.ID, &usecase.UpdateCouponInput{ExpireDate: ptr(date(2023, 12, 1))})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "expireDate", verr.Issues[0].Field)

	stored, err := svc.GetCoupon(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 12, 31), stored.ExpireDate)
}

func TestCouponService_ValidateCoupon_CheckOrder(t *testing.T) {
	svc, _, _ := createTestCouponService(t)
	ctx := context.Background()
	svc.now = func() time.Time { return date(2025, 3, 1) }

	inactiveExpired := couponInput("OLDOFF")
	inactiveExpired.IsActive = ptr(false)
	_, err := svc.CreateCoupon(ctx, inactiveExpired)
	require.NoError(t, err)

	expired := couponInput("OLD")
	_, err = svc.CreateCoupon(ctx, expired)
	require.NoError(t, err)

	future := couponInput("SOON")
	future.StartDate, future.ExpireDate = date(2025, 6, 1), date(2025, 7, 1)
	_, err = svc.CreateCoupon(ctx, future)
	require.NoError(t, err)

	current := couponInput("NOW")
	current.StartDate, current.ExpireDate = date(2025, 1, 1), date(2025, 3, 1)
	_, err = svc.CreateCoupon(ctx, current)
	require.NoError(t, err)

	tests := []struct {
		code   string
		valid  bool
		reason entity.CouponRejection
	}{
		{code: "missing", reason: entity.CouponNotFound},
		{code: "oldoff", reason: entity.CouponInactive},
		{code: "old", reason: entity.CouponExpired},
		{code: "soon", reason: entity.CouponNotYetValid},
		{code: "now", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result, err := svc.ValidateCoupon(ctx, tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.reason, result.Reason)
			if tt.reason == entity.CouponNotFound {
				assert.Nil(t, result.Coupon)
			} else {
				assert.NotNil(t, result.Coupon)
			}
		})
	}
}

func TestCouponService_GenerateCouponQR(t *testing.T) {
	svc, qr, _ := createTestCouponService(t)
	ctx := context.Background()

	coupon, err := svc.CreateCoupon(ctx, couponInput("scanme"))
	require.NoError(t, err)

	qr.EXPECT().GenerateCouponQR("SCANME").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := svc.GenerateCouponQR(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestCouponService_GenerateCouponQR_RendererFailure(t *testing.T) {
	svc, qr, _ := createTestCouponService(t)
	ctx := context.Background()

	coupon, err := svc.CreateCoupon(ctx, couponInput("broken"))
	require.NoError(t, err)

	qr.EXPECT().GenerateCouponQR("BROKEN").Return(nil, errors.New("encoder exploded")).Once()

	_, err = svc.GenerateCouponQR(ctx, coupon.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder exploded")
}

func TestCouponService_DeleteCoupon(t *testing.T) {
	svc, _, f := createTestCouponService(t)
	ctx := context.Background()

	coupon, err := svc.CreateCoupon(ctx, couponInput("GONE"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCoupon(ctx, coupon.ID))
	require.ErrorIs(t, svc.DeleteCoupon(ctx, coupon.ID), domainerrors.ErrCouponNotFound)
	require.ErrorIs(t, svc.DeleteCoupon(ctx, uuid.New()), domainerrors.ErrCouponNotFound)

	assert.Equal(t, []string{"created", "deleted"}, f.publisher.actions(resourceCoupon))
}

func TestCouponService_ListCoupons_FiltersByNormalizedCode(t *testing.T) {
	svc, _, _ := createTestCouponService(t)
	ctx := context.Background()

	for _, code := range []string{"ALPHA", "BETA"} {
		_, err := svc.CreateCoupon(ctx, couponInput(code))
		require.NoError(t, err)
	}

	result, err := svc.ListCoupons(ctx, entity.CouponFilter{Code: "beta"}, entity.Page{})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "BETA", result.Items[0].Code)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
}
