package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courseadmin/config"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/errors"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	bootstrap    *config.BootstrapConfig
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &authService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		bootstrap:    bootstrap,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token.
// Unknown emails, inactive accounts and wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeError(err, domainerrors.ErrAdminNotFound, nil, "find admin by email")
	}

	if !admin.IsActive || !srv.hasher.Check(password, admin.PasswordHash) {
		srv.log(ctx).Info("Rejected login", slog.Any("adminID", admin.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(admin.ID, admin.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginResult{AccessToken: token, Admin: admin}, nil
}

// GetAdmin retrieves an admin by ID
func (srv *authService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrAdminNotFound, nil, "find admin")
	}

	return admin, nil
}

// CreateAdmin registers a new staff account.
func (srv *authService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Admin, error) {
	verr := domainerrors.NewValidationError()
	if !input.Role.IsValid() {
		verr.Add("role", "role must be one of: superadmin, admin, data-entry")
	}
	if input.Password == "" {
		verr.Add("password", "password is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	_, err := srv.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAdminEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err, domainerrors.ErrAdminNotFound, nil, "find admin by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	now := srv.now()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, storeError(err, domainerrors.ErrAdminNotFound, domainerrors.ErrAdminEmailTaken, "create admin")
	}

	srv.log(ctx).Info("Admin created", slog.Any("adminID", admin.ID), slog.String("role", admin.Role.String()))

	return admin, nil
}

// EnsureBootstrapAdmin creates the configured superadmin when the admin store is empty.
func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrap.Email == "" || srv.bootstrap.Password == "" {
		return nil
	}

	count, err := srv.adminRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count admins")
	}
	if count > 0 {
		return nil
	}

	admin, err := srv.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Email:    srv.bootstrap.Email,
		Name:     srv.bootstrap.Name,
		Password: srv.bootstrap.Password,
		Role:     entity.RoleSuperAdmin,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Warn("Bootstrap superadmin created; change its password", slog.String("email", admin.Email))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
