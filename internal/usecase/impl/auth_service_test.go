package impl

import (
	"context"
	"testing"

	"courseadmin/config"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/infra/persistence/memory"
	mockRepo "courseadmin/internal/mocks/repository"
	mockSvc "courseadmin/internal/mocks/service"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authTestDeps struct {
	adminRepo repository.AdminRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, cfg *config.Config) (usecase.AuthUsecase, *authTestDeps) {
	t.Helper()
	f := newTestFixture(t)
	deps := &authTestDeps{
		adminRepo: memory.NewAdminRepository(f.db),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		AdminRepo:    deps.adminRepo,
		Hasher:       deps.hasher,
		TokenService: deps.tokens,
		Config:       cfg,
		Logger:       f.logger,
	})

	return svc, deps
}

// expectPrefixHash hashes a password as "hash:" + password.
func (d *authTestDeps) expectPrefixHash() {
	d.hasher.EXPECT().Hash(mock.Anything).RunAndReturn(func(password string) (string, error) {
		return "hash:" + password, nil
	}).Maybe()
	d.hasher.EXPECT().Check(mock.Anything, mock.Anything).RunAndReturn(func(password, hash string) bool {
		return hash == "hash:"+password
	}).Maybe()
}

func TestAuthService_Login(t *testing.T) {
	svc, deps := createTestAuthService(t, &config.Config{})
	deps.expectPrefixHash()
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Email:    " Editor@Example.com ",
		Name:     "Editor",
		Password: "s3cret",
		Role:     entity.RoleDataEntry,
	})
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", admin.Email)

	deps.tokens.EXPECT().GenerateAccessToken(admin.ID, entity.RoleDataEntry).Return("signed.token", nil).Once()

	result, err := svc.Login(ctx, "EDITOR@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "signed.token", result.AccessToken)
	assert.Equal(t, admin.ID, result.Admin.ID)

	_, err = svc.Login(ctx, "editor@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	f := newTestFixture(t)
	repo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		AdminRepo:    repo,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       &config.Config{},
		Logger:       f.logger,
	})

	repo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(&entity.Admin{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
		IsActive:     false,
	}, nil).Once()

	_, err := svc.Login(context.Background(), "gone@example.com", "pw")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestAuthService_CreateAdmin_Rules(t *testing.T) {
	svc, deps := createTestAuthService(t, &config.Config{})
	deps.expectPrefixHash()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, &usecase.CreateAdminInput{Email: "a@example.com", Role: "owner"})
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 2)
	assert.Equal(t, "role", verr.Issues[0].Field)
	assert.Equal(t, "password", verr.Issues[1].Field)

	_, err = svc.CreateAdmin(ctx, &usecase.CreateAdminInput{Email: "a@example.com", Password: "pw", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, &usecase.CreateAdminInput{Email: "A@EXAMPLE.COM", Password: "pw", Role: entity.RoleAdmin})
	require.ErrorIs(t, err, domainerrors.ErrAdminEmailTaken)
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	cfg := &config.Config{Bootstrap: &config.BootstrapConfig{
		Email:    "root@example.com",
		Name:     "Root",
		Password: "change-me",
	}}
	svc, deps := createTestAuthService(t, cfg)
	deps.expectPrefixHash()
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))
	// a second run finds the store populated
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))

	count, err := deps.adminRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	root, err := deps.adminRepo.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, root.Role)
	assert.True(t, root.IsActive)
}

func TestAuthService_EnsureBootstrapAdmin_Unconfigured(t *testing.T) {
	svc, deps := createTestAuthService(t, &config.Config{})

	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))

	count, err := deps.adminRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
