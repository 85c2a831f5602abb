package handler

import (
	"log/slog"

	"courseadmin/internal/delivery/api/middleware"
	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login and admin account endpoints
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type loginRequest struct {
	Email    request.Text `json:"email" label:"Email" validate:"notblank"`
	Password request.Text `json:"password" label:"Password" validate:"notblank"`
}

type createAdminRequest struct {
	Email    request.Text `json:"email" label:"Email" validate:"notblank,email"`
	Name     request.Text `json:"name"`
	Password request.Text `json:"password" label:"Password" validate:"notblank,min=8"`
	Role     request.Text `json:"role" label:"Role" validate:"notblank,oneof=superadmin admin data-entry"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.authUC.Login(c.Request().Context(), req.Email.Value(), req.Password.Value())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Login successful")
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	admin, err := h.authUC.GetAdmin(c.Request().Context(), actor.AdminID)
	if err != nil {
		return err
	}

	return response.OK(c, admin, "Profile retrieved successfully")
}

// CreateAdmin handles POST /admins
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	admin, err := h.authUC.CreateAdmin(c.Request().Context(), &usecase.CreateAdminInput{
		Email:    req.Email.Value(),
		Name:     req.Name.Value(),
		Password: req.Password.Value(),
		Role:     entity.Role(req.Role.Value()),
	})
	if err != nil {
		return err
	}

	return response.Created(c, admin, "Admin created successfully")
}
