package impl

import (
	"context"
	"testing"

	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/infra/persistence/memory"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTeacherService(t *testing.T) (usecase.TeacherUsecase, *testFixture) {
	t.Helper()
	f := newTestFixture(t)

	return NewTeacherService(TeacherServiceParams{
		TeacherRepo:    memory.NewTeacherRepository(f.db),
		Storage:        f.storage,
		ImageProcessor: f.images,
		Publisher:      f.publisher,
		Config:         f.config,
		Logger:         f.logger,
	}), f
}

func TestTeacherService_NameUniquenessExcludesSelf(t *testing.T) {
	svc, _ := createTestTeacherService(t)
	ctx := context.Background()

	rao, err := svc.CreateTeacher(ctx, &usecase.TeacherInput{Name: ptr("Dr. Rao"), Designation: ptr("Professor")})
	require.NoError(t, err)
	other, err := svc.CreateTeacher(ctx, &usecase.TeacherInput{Name: ptr("Ms. Iyer")})
	require.NoError(t, err)

	updated, err := svc.UpdateTeacher(ctx, rao.ID, &usecase.TeacherInput{Description: ptr("Teaches algebra")})
	require.NoError(t, err)
	assert.Equal(t, "Teaches algebra", updated.Description)
	assert.Equal(t, "Dr. Rao", updated.Name)

	_, err = svc.UpdateTeacher(ctx, other.ID, &usecase.TeacherInput{Name: ptr("Dr. Rao")})
	require.ErrorIs(t, err, domainerrors.ErrTeacherNameTaken)

	stored, err := svc.GetTeacher(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ms. Iyer", stored.Name)
}

func TestTeacherService_CreateTeacher_NameRequired(t *testing.T) {
	svc, _ := createTestTeacherService(t)

	_, err := svc.CreateTeacher(context.Background(), &usecase.TeacherInput{Designation: ptr("Tutor")})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Issues[0].Field)
	assert.Equal(t, "Teacher name is required.", verr.Issues[0].Message)
}

func TestTeacherService_ImageLifecycle(t *testing.T) {
	svc, f := createTestTeacherService(t)
	ctx := context.Background()

	var calls []string
	f.expectImagePassThrough()
	f.expectUploads(teacherAssetFolder, &calls)
	f.expectDeletes(&calls)

	teacher, err := svc.CreateTeacher(ctx, &usecase.TeacherInput{
		Name:  ptr("Dr. Rao"),
		Image: &usecase.AssetUpload{Filename: "rao.jpg", Data: []byte("v1")},
	})
	require.NoError(t, err)
	first := teacher.ImageKey

	updated, err := svc.UpdateTeacher(ctx, teacher.ID, &usecase.TeacherInput{
		Image: &usecase.AssetUpload{Filename: "rao2.jpg", Data: []byte("v2")},
	})
	require.NoError(t, err)
	second := updated.ImageKey

	require.NoError(t, svc.DeleteTeacher(ctx, teacher.ID))

	assert.Equal(t, []string{
		"upload:" + first,
		"upload:" + second,
		"delete:" + first,
		"delete:" + second,
	}, calls)
}

func TestTeacherService_UnsupportedImage(t *testing.T) {
	svc, f := createTestTeacherService(t)

	f.images.EXPECT().Normalize(mock.Anything).Return(nil, "", "", errors.New("unrecognised image format")).Once()

	_, err := svc.CreateTeacher(context.Background(), &usecase.TeacherInput{
		Name:  ptr("Dr. Rao"),
		Image: &usecase.AssetUpload{Data: []byte("not an image")},
	})

	require.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
	assert.Empty(t, f.publisher.actions(resourceTeacher))
}

func TestTeacherService_DeleteTeacher_UnknownID(t *testing.T) {
	svc, _ := createTestTeacherService(t)

	err := svc.DeleteTeacher(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrTeacherNotFound)
}
