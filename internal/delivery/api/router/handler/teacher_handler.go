package handler

import (
	"log/slog"

	"courseadmin/config"
	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TeacherHandlerParams holds dependencies for TeacherHandler, injected by Fx.
type TeacherHandlerParams struct {
	fx.In

	TeacherUC usecase.TeacherUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// TeacherHandler serves /teachers
type TeacherHandler struct {
	teacherUC     usecase.TeacherUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewTeacherHandler is the constructor for TeacherHandler
func NewTeacherHandler(params TeacherHandlerParams) *TeacherHandler {
	return &TeacherHandler{
		teacherUC:     params.TeacherUC,
		maxUploadSize: maxUploadSize(params.Config),
		logger:        params.Logger,
	}
}

// Teacher requests may arrive as JSON or multipart/form-data with an image file.
type createTeacherRequest struct {
	Name        request.Text `json:"name" form:"name" label:"Teacher name" validate:"notblank"`
	Designation request.Text `json:"designation" form:"designation"`
	Description request.Text `json:"description" form:"description"`
	ImageURL    request.Text `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
	IsActive    request.Bool `json:"isActive" form:"isActive" validate:"omitempty,boolean"`
}

type updateTeacherRequest struct {
	Name        request.Text `json:"name" form:"name" label:"Teacher name" validate:"omitempty,notblank"`
	Designation request.Text `json:"designation" form:"designation"`
	Description request.Text `json:"description" form:"description"`
	ImageURL    request.Text `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
	IsActive    request.Bool `json:"isActive" form:"isActive" validate:"omitempty,boolean"`
}

// CreateTeacher handles POST /teachers
func (h *TeacherHandler) CreateTeacher(c echo.Context) error {
	var req createTeacherRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	image, err := formFile(c, "image", h.maxUploadSize)
	if err != nil {
		return err
	}

	teacher, err := h.teacherUC.CreateTeacher(c.Request().Context(), &usecase.TeacherInput{
		Name:        req.Name.Ptr(),
		Designation: req.Designation.Ptr(),
		Description: req.Description.Ptr(),
		ImageURL:    req.ImageURL.Ptr(),
		Image:       image,
		IsActive:    req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, teacher, "Teacher created successfully")
}

// GetTeacher handles GET /teachers/:id
func (h *TeacherHandler) GetTeacher(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	teacher, err := h.teacherUC.GetTeacher(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, teacher, "Teacher retrieved successfully")
}

// ListTeachers handles GET /teachers
func (h *TeacherHandler) ListTeachers(c echo.Context) error {
	var query namedListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	result, err := h.teacherUC.ListTeachers(c.Request().Context(), query.filter(), query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Teachers retrieved successfully")
}

// UpdateTeacher handles PUT /teachers/:id
func (h *TeacherHandler) UpdateTeacher(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTeacherRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	image, err := formFile(c, "image", h.maxUploadSize)
	if err != nil {
		return err
	}

	teacher, err := h.teacherUC.UpdateTeacher(c.Request().Context(), id, &usecase.TeacherInput{
		Name:        req.Name.Ptr(),
		Designation: req.Designation.Ptr(),
		Description: req.Description.Ptr(),
		ImageURL:    req.ImageURL.Ptr(),
		Image:       image,
		IsActive:    req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.OK(c, teacher, "Teacher updated successfully")
}

// DeleteTeacher handles DELETE /teachers/:id
func (h *TeacherHandler) DeleteTeacher(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.teacherUC.DeleteTeacher(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Teacher deleted successfully")
}
