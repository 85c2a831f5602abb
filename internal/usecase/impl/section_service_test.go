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

func createTestSectionService(t *testing.T) (usecase.SectionUsecase, *testFixture) {
	t.Helper()
	f := newTestFixture(t)

	return NewSectionService(SectionServiceParams{
		SectionRepo: memory.NewSectionRepository(f.db),
		Publisher:   f.publisher,
		Config:      f.config,
		Logger:      f.logger,
	}), f
}

func TestSectionService_CreateSection_NameRequired(t *testing.T) {
	svc, _ := createTestSectionService(t)

	_, err := svc.CreateSection(context.Background(), &usecase.SectionInput{Name: ptr("  ")})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Section name is required.", verr.Message())
}

func TestSectionService_NameUniqueness(t *testing.T) {
	svc, f := createTestSectionService(t)
	ctx := context.Background()

	maths, err := svc.CreateSection(ctx, &usecase.SectionInput{Name: ptr("Mathematics")})
	require.NoError(t, err)
	physics, err := svc.CreateSection(ctx, &usecase.SectionInput{Name: ptr("Physics")})
	require.NoError(t, err)

	_, err = svc.CreateSection(ctx, &usecase.SectionInput{Name: ptr("Mathematics")})
	require.ErrorIs(t, err, domainerrors.ErrSectionNameTaken)

	updated, err := svc.UpdateSection(ctx, maths.ID, &usecase.SectionInput{
		Name:        ptr("Mathematics"),
		Description: ptr("Numbers and shapes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Numbers and shapes", updated.Description)

	_, err = svc.UpdateSection(ctx, physics.ID, &usecase.SectionInput{Name: ptr("Mathematics")})
	require.ErrorIs(t, err, domainerrors.ErrSectionNameTaken)

	assert.Equal(t, []string{"created", "created", "updated"}, f.publisher.actions(resourceSection))
}

func TestSectionService_ListSections_FilterByActive(t *testing.T) {
	svc, _ := createTestSectionService(t)
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, &usecase.SectionInput{Name: ptr("Open")})
	require.NoError(t, err)
	_, err = svc.CreateSection(ctx, &usecase.SectionInput{Name: ptr("Archived"), IsActive: ptr(false)})
	require.NoError(t, err)

	result, err := svc.ListSections(ctx, entity.NamedFilter{IsActive: ptr(false)}, entity.Page{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Archived", result.Items[0].Name)

	empty, err := svc.ListSections(ctx, entity.NamedFilter{Name: "Nope"}, entity.Page{})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Items)
}

func TestSectionService_DeleteSection_UnknownID(t *testing.T) {
	svc, _ := createTestSectionService(t)

	err := svc.DeleteSection(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrSectionNotFound)
}
