package impl

import (
	"context"
	"testing"

	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/infra/persistence/memory"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlanService(t *testing.T) (usecase.PlanUsecase, usecase.CouponUsecase, *testFixture) {
	t.Helper()
	f := newTestFixture(t)

	plans := NewPlanService(PlanServiceParams{
		TxManager: memory.NewTransactionManager(f.db),
		PlanRepo:  memory.NewPlanRepository(f.db),
		Publisher: f.publisher,
		Config:    f.config,
		Logger:    f.logger,
	})
	coupons := NewCouponService(CouponServiceParams{
		CouponRepo: memory.NewCouponRepository(f.db),
		Publisher:  f.publisher,
		Config:     f.config,
		Logger:     f.logger,
	})

	return plans, coupons, f
}

func TestPlanService_CreatePlan_DefaultsAndReferences(t *testing.T) {
	plans, coupons, f := createTestPlanService(t)
	ctx := context.Background()

	coupon, err := coupons.CreateCoupon(ctx, couponInput("PLAN10"))
	require.NoError(t, err)

	plan, err := plans.CreatePlan(ctx, &usecase.CreatePlanInput{
		Name:           "yearly",
		Title:          "Yearly access",
		Amount:         4999,
		DurationInDays: 365,
		CourseIDs:      []string{"course-1"},
		CouponIDs:      []uuid.UUID{coupon.ID, coupon.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, plan.Status)
	assert.Equal(t, 0, plan.Priority)
	assert.Equal(t, []uuid.UUID{coupon.ID}, plan.CouponIDs)
	assert.Equal(t, []string{}, plan.EbookIDs)
	assert.Equal(t, []string{"created"}, f.publisher.actions(resourcePlan))
}

func TestPlanService_CreatePlan_UnknownCouponReference(t *testing.T) {
	plans, _, f := createTestPlanService(t)
	missing := uuid.New()

	_, err := plans.CreatePlan(context.Background(), &usecase.CreatePlanInput{
		Name:           "monthly",
		Amount:         499,
		DurationInDays: 30,
		CouponIDs:      []uuid.UUID{missing},
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "couponIds", verr.Issues[0].Field)
	assert.Contains(t, verr.Issues[0].Message, missing.String())
	assert.Empty(t, f.publisher.actions(resourcePlan))
}

func TestPlanService_CreatePlan_FieldRules(t *testing.T) {
	plans, _, _ := createTestPlanService(t)

	_, err := plans.CreatePlan(context.Background(), &usecase.CreatePlanInput{
		Amount:         -1,
		DurationInDays: 0,
		Status:         "paused",
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"name", "amount", "durationInDays", "status"}, fields)
}

func TestPlanService_UpdatePlan(t *testing.T) {
	plans, _, _ := createTestPlanService(t)
	ctx := context.Background()

	plan, err := plans.CreatePlan(ctx, &usecase.CreatePlanInput{Name: "monthly", Amount: 499, DurationInDays: 30})
	require.NoError(t, err)

	updated, err := plans.UpdatePlan(ctx, plan.ID, &usecase.UpdatePlanInput{
		Status:   ptr(entity.StatusInactive),
		EbookIDs: []string{"ebook-7"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, updated.Status)
	assert.Equal(t, []string{"ebook-7"}, updated.EbookIDs)
	assert.Equal(t, "monthly", updated.Name)

	_, err = plans.UpdatePlan(ctx, plan.ID, &usecase.UpdatePlanInput{DurationInDays: ptr(0)})
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = plans.UpdatePlan(ctx, uuid.New(), &usecase.UpdatePlanInput{Name: ptr("x")})
	require.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestPlanService_DeletePlan(t *testing.T) {
	plans, _, _ := createTestPlanService(t)
	ctx := context.Background()

	plan, err := plans.CreatePlan(ctx, &usecase.CreatePlanInput{Name: "weekly", Amount: 99, DurationInDays: 7})
	require.NoError(t, err)

	require.NoError(t, plans.DeletePlan(ctx, plan.ID))
	require.ErrorIs(t, plans.DeletePlan(ctx, plan.ID), domainerrors.ErrPlanNotFound)

	_, err = plans.GetPlan(ctx, plan.ID)
	require.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}
