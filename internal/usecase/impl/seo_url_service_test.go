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

func createTestSEOURLService(t *testing.T) (usecase.SEOURLUsecase, *testFixture) {
	t.Helper()
	f := newTestFixture(t)

	svc := NewSEOURLService(SEOURLServiceParams{
		SEOURLRepo: memory.NewSEOURLRepository(f.db),
		Publisher:  f.publisher,
		Config:     f.config,
		Logger:     f.logger,
	})

	return svc, f
}

func TestSEOURLService_CreateSEOURL_Defaults(t *testing.T) {
	svc, f := createTestSEOURLService(t)

	seoURL, err := svc.CreateSEOURL(context.Background(), &usecase.SEOURLInput{
		URL:   ptr(" /courses/go "),
		Title: ptr("Learn Go"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/courses/go", seoURL.URL)
	assert.InDelta(t, 0.5, seoURL.Priority, 1e-9)
	assert.True(t, seoURL.IsActive)
	assert.Equal(t, []string{}, seoURL.Keywords)
	assert.Equal(t, []string{"created"}, f.publisher.actions(resourceSEOURL))
}

func TestSEOURLService_CreateSEOURL_Validation(t *testing.T) {
	svc, _ := createTestSEOURLService(t)

	_, err := svc.CreateSEOURL(context.Background(), &usecase.SEOURLInput{Priority: ptr(1.5)})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 2)
	assert.Equal(t, "url", verr.Issues[0].Field)
	assert.Equal(t, "SEO url is required.", verr.Issues[0].Message)
	assert.Equal(t, "priority", verr.Issues[1].Field)
}

func TestSEOURLService_URLUniqueness(t *testing.T) {
	svc, _ := createTestSEOURLService(t)
	ctx := context.Background()

	first, err := svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/about")})
	require.NoError(t, err)
	second, err := svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/pricing")})
	require.NoError(t, err)

	_, err = svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/about")})
	require.ErrorIs(t, err, domainerrors.ErrSEOURLTaken)

	_, err = svc.UpdateSEOURL(ctx, second.ID, &usecase.SEOURLInput{URL: ptr("/about")})
	require.ErrorIs(t, err, domainerrors.ErrSEOURLTaken)

	// resubmitting its own url is not a conflict
	updated, err := svc.UpdateSEOURL(ctx, first.ID, &usecase.SEOURLInput{URL: ptr("/about"), Keywords: []string{"team"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"team"}, updated.Keywords)
}

func TestSEOURLService_UpdateSEOURLPriority(t *testing.T) {
	svc, f := createTestSEOURLService(t)
	ctx := context.Background()

	seoURL, err := svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/blog")})
	require.NoError(t, err)

	updated, err := svc.UpdateSEOURLPriority(ctx, seoURL.ID, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, updated.Priority, 1e-9)

	for _, priority := range []float64{-0.1, 1.01} {
		_, err = svc.UpdateSEOURLPriority(ctx, seoURL.ID, priority)
		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "priority", verr.Issues[0].Field)
	}

	_, err = svc.UpdateSEOURLPriority(ctx, uuid.New(), 0.3)
	require.ErrorIs(t, err, domainerrors.ErrSEOURLNotFound)
	assert.Equal(t, []string{"created", "updated"}, f.publisher.actions(resourceSEOURL))
}

func TestSEOURLService_DeleteSEOURL_Deactivates(t *testing.T) {
	svc, f := createTestSEOURLService(t)
	ctx := context.Background()

	seoURL, err := svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/faq")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSEOURL(ctx, seoURL.ID))

	stored, err := svc.GetSEOURL(ctx, seoURL.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	inactive, err := svc.ListSEOURLs(ctx, entity.SEOURLFilter{IsActive: ptr(false)}, entity.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, inactive.Total)

	// the url stays reserved
	_, err = svc.CreateSEOURL(ctx, &usecase.SEOURLInput{URL: ptr("/faq")})
	require.ErrorIs(t, err, domainerrors.ErrSEOURLTaken)

	require.ErrorIs(t, svc.DeleteSEOURL(ctx, uuid.New()), domainerrors.ErrSEOURLNotFound)
	assert.Equal(t, []string{"created", "deactivated"}, f.publisher.actions(resourceSEOURL))
}
