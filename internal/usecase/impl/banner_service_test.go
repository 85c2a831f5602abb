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

func createTestBannerService(t *testing.T) (*bannerService, *testFixture) {
	t.Helper()
	f := newTestFixture(t)

	svc := NewBannerService(BannerServiceParams{
		TxManager:      memory.NewTransactionManager(f.db),
		BannerRepo:     memory.NewBannerRepository(f.db),
		Storage:        f.storage,
		ImageProcessor: f.images,
		Publisher:      f.publisher,
		Config:         f.config,
		Logger:         f.logger,
	})

	return svc.(*bannerService), f
}

func bannerInput(priority *int, active bool) *usecase.CreateBannerInput {
	return &usecase.CreateBannerInput{
		Title:       "Spring sale",
		ImageURL:    "https://cdn.example.com/spring.jpg",
		RedirectURL: "https://shop.example.com/spring",
		Priority:    priority,
		IsActive:    ptr(active),
	}
}

func TestBannerService_CreateBanner_AssignsNextActivePriority(t *testing.T) {
	svc, _ := createTestBannerService(t)
	ctx := context.Background()

	_, err := svc.CreateBanner(ctx, bannerInput(ptr(1), true))
	require.NoError(t, err)
	_, err = svc.CreateBanner(ctx, bannerInput(ptr(3), true))
	require.NoError(t, err)
	// inactive banners do not count towards the default
	_, err = svc.CreateBanner(ctx, bannerInput(ptr(9), false))
	require.NoError(t, err)

	banner, err := svc.CreateBanner(ctx, bannerInput(nil, true))

	require.NoError(t, err)
	assert.Equal(t, 4, banner.Priority)
}

func TestBannerService_CreateBanner_FirstActiveGetsOne(t *testing.T) {
	svc, _ := createTestBannerService(t)

	banner, err := svc.CreateBanner(context.Background(), bannerInput(nil, true))

	require.NoError(t, err)
	assert.Equal(t, 1, banner.Priority)
	assert.True(t, banner.IsActive)
}

func TestBannerService_CreateBanner_ExplicitPriorityConflict(t *testing.T) {
	svc, f := createTestBannerService(t)
	ctx := context.Background()

	_, err := svc.CreateBanner(ctx, bannerInput(ptr(5), true))
	require.NoError(t, err)

	_, err = svc.CreateBanner(ctx, bannerInput(ptr(5), true))

	require.ErrorIs(t, err, domainerrors.ErrBannerPriorityTaken)
	assert.Equal(t, []string{"created"}, f.publisher.actions(resourceBanner))
}

func TestBannerService_CreateBanner_InactiveMayShareOccupiedPriority(t *testing.T) {
	svc, _ := createTestBannerService(t)
	ctx := context.Background()

	_, err := svc.CreateBanner(ctx, bannerInput(ptr(5), true))
	require.NoError(t, err)

	banner, err := svc.CreateBanner(ctx, bannerInput(ptr(5), false))

	require.NoError(t, err)
	assert.Equal(t, 5, banner.Priority)
	assert.False(t, banner.IsActive)
}

func TestBannerService_CreateBanner_Validation(t *testing.T) {
	svc, _ := createTestBannerService(t)
	start, end := date(2024, 6, 1), date(2024, 5, 1)

	_, err := svc.CreateBanner(context.Background(), &usecase.CreateBannerInput{
		RedirectURL: "https://shop.example.com",
		StartDate:   &start,
		EndDate:     &end,
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := []string{}
	for _, issue := range verr.Issues {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"imageUrl", "endDate"}, fields)
}

func TestBannerService_CreateBanner_RequiresRedirectURL(t *testing.T) {
	svc, f := createTestBannerService(t)

	for _, redirect := range []string{"", "   "} {
		input := bannerInput(nil, true)
		input.RedirectURL = redirect

		_, err := svc.CreateBanner(context.Background(), input)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Issues, 1)
		assert.Equal(t, "redirectUrl", verr.Issues[0].Field)
	}
	assert.Empty(t, f.publisher.actions(resourceBanner))
}

func TestBannerService_ToggleBanner_ActivatingIntoHeldPriorityConflicts(t *testing.T) {
	svc, f := createTestBannerService(t)
	ctx := context.Background()

	active, err := svc.CreateBanner(ctx, bannerInput(ptr(5), true))
	require.NoError(t, err)
	inactive, err := svc.CreateBanner(ctx, bannerInput(ptr(5), false))
	require.NoError(t, err)

	_, err = svc.ToggleBanner(ctx, inactive.ID)
	require.ErrorIs(t, err, domainerrors.ErrBannerPriorityTaken)

	unchanged, err := svc.GetBanner(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, unchanged.IsActive)

	// once the holder steps aside the second banner can take priority 5
	toggled, err := svc.ToggleBanner(ctx, active.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleBanner(ctx, inactive.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
	assert.Equal(t, 5, toggled.Priority)

	assert.Equal(t, []string{"created", "created", "toggled", "toggled"}, f.publisher.actions(resourceBanner))
}

func TestBannerService_UpdateBanner_KeepsOwnPriority(t *testing.T) {
	svc, _ := createTestBannerService(t)
	ctx := context.Background()

	banner, err := svc.CreateBanner(ctx, bannerInput(ptr(2), true))
	require.NoError(t, err)

	updated, err := svc.UpdateBanner(ctx, banner.ID, &usecase.UpdateBannerInput{
		Priority: ptr(2),
		Title:    ptr("Summer sale"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Summer sale", updated.Title)
	assert.Equal(t, 2, updated.Priority)
}

func TestBannerService_UpdateBanner_MergedDateRangeIsChecked(t *testing.T) {
	svc, _ := createTestBannerService(t)
	ctx := context.Background()
	start := date(2024, 6, 1)

	input := bannerInput(nil, true)
	input.StartDate = &start
	banner, err := svc.CreateBanner(ctx, input)
	require.NoError(t, err)

	end := date(2024, 5, 1)
	_, err = svc.UpdateBanner(ctx, banner.ID, &usecase.UpdateBannerInput{EndDate: &end})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDate", verr.Issues[0].Field)
}

func TestBannerService_UpdateBanner_ReplacesImageAfterPersisting(t *testing.T) {
	svc, f := createTestBannerService(t)
	ctx := context.Background()

	var calls []string
	f.expectImagePassThrough()
	f.expectUploads(bannerAssetFolder, &calls)
	f.expectDeletes(&calls)

	input := bannerInput(nil, true)
	input.ImageURL = ""
	input.Image = &usecase.AssetUpload{Filename: "old.jpg", ContentType: "image/jpeg", Data: []byte("old")}
	banner, err := svc.CreateBanner(ctx, input)
	require.NoError(t, err)
	oldKey := banner.ImageKey
	require.NotEmpty(t, oldKey)
	assert.Equal(t, "https://cdn.example.com/"+oldKey, banner.ImageURL)

	updated, err := svc.UpdateBanner(ctx, banner.ID, &usecase.UpdateBannerInput{
		Image: &usecase.AssetUpload{Filename: "new.jpg", ContentType: "image/jpeg", Data: []byte("new")},
	})
	require.NoError(t, err)

	newKey := updated.ImageKey
	assert.NotEqual(t, oldKey, newKey)
	assert.Equal(t, []string{"upload:" + oldKey, "upload:" + newKey, "delete:" + oldKey}, calls)

	stored, err := svc.GetBanner(ctx, banner.ID)
	require.NoError(t, err)
	assert.Equal(t, newKey, stored.ImageKey)
}

func TestBannerService_UpdateBanner_FailedWriteDiscardsNewUpload(t *testing.T) {
	svc, f := createTestBannerService(t)
	ctx := context.Background()

	_, err := svc.CreateBanner(ctx, bannerInput(ptr(1), true))
	require.NoError(t, err)
	second, err := svc.CreateBanner(ctx, bannerInput(ptr(2), true))
	require.NoError(t, err)

	var calls []string
	f.expectImagePassThrough()
	f.expectUploads(bannerAssetFolder, &calls)
	f.expectDeletes(&calls)

	_, err = svc.UpdateBanner(ctx, second.ID, &usecase.UpdateBannerInput{
		Priority: ptr(1),
		Image:    &usecase.AssetUpload{Filename: "new.jpg", Data: []byte("new")},
	})
	require.ErrorIs(t, err, domainerrors.ErrBannerPriorityTaken)

	require.Len(t, calls, 2)
	uploadedKey := calls[0][len("upload:"):]
	assert.Equal(t, "delete:"+uploadedKey, calls[1])

	stored, err := svc.GetBanner(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Priority)
	assert.Equal(t, "https://cdn.example.com/spring.jpg", stored.ImageURL)
}

func TestBannerService_DeleteBanner_RemovesRecordThenAssets(t *testing.T) {
	svc, f := createTestBannerService(t)
	ctx := context.Background()

	var calls []string
	f.expectImagePassThrough()
	f.expectUploads(bannerAssetFolder, &calls)
	f.expectDeletes(&calls)

	input := bannerInput(nil, true)
	input.Image = &usecase.AssetUpload{Data: []byte("desktop")}
	input.MobileImage = &usecase.AssetUpload{Data: []byte("mobile")}
	banner, err := svc.CreateBanner(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBanner(ctx, banner.ID))

	_, err = svc.GetBanner(ctx, banner.ID)
	require.ErrorIs(t, err, domainerrors.ErrBannerNotFound)
	assert.Equal(t, []string{
		"upload:" + banner.ImageKey,
		"upload:" + banner.MobileImageKey,
		"delete:" + banner.ImageKey,
		"delete:" + banner.MobileImageKey,
	}, calls)
	assert.Equal(t, []string{"created", "deleted"}, f.publisher.actions(resourceBanner))
}

func TestBannerService_DeleteBanner_UnknownID(t *testing.T) {
	svc, f := createTestBannerService(t)

	err := svc.DeleteBanner(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrBannerNotFound)
	assert.Empty(t, f.publisher.actions(resourceBanner))
}

func TestBannerService_ListBanners_OrderedByPriority(t *testing.T) {
	svc, _ := createTestBannerService(t)
	ctx := context.Background()

	for _, p := range []int{3, 1, 2} {
		_, err := svc.CreateBanner(ctx, bannerInput(ptr(p), true))
		require.NoError(t, err)
	}

	result, err := svc.ListBanners(ctx, entity.BannerFilter{IsActive: ptr(true)}, entity.Page{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Items[0].Priority)
	assert.Equal(t, 2, result.Items[1].Priority)
}
