// Package handler contains the echo handlers of the admin API.
package handler

import (
	"io"
	"net/http"
	"strings"

	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/errors"
	"courseadmin/internal/usecase"
	"courseadmin/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listQuery holds the pagination parameters shared by list endpoints.
type listQuery struct {
	Page  request.Number `query:"page" validate:"omitempty,numeric,min=1,max=1000000,integer"`
	Limit request.Number `query:"limit" validate:"omitempty,numeric,integer,min=1"`
}

func (q listQuery) page() entity.Page {
	return entity.Page{Page: q.Page.Int(), Limit: q.Limit.Int()}
}

// bindRequest binds the body, form and query into req and runs its validation rules.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	return parseUUID(c.Param("id"), "id")
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.Issue{Field: field, Message: field + " must be a valid UUID"})
	}

	return id, nil
}

func parseUUIDs(raw []string, field string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	verr := domainerrors.NewValidationError()
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			verr.Add(field, s+" is not a valid UUID")

			continue
		}
		ids = append(ids, id)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return ids, nil
}

// formFile reads an optional multipart file. It returns nil when the request
// is not multipart or the field is absent.
func formFile(c echo.Context, field string, maxSize int64) (*usecase.AssetUpload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Malformed multipart body")
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, domainerrors.NewValidationError(domainerrors.Issue{
			Field:   field,
			Message: field + " must be at most " + util.FormatBytes(maxSize),
		})
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &usecase.AssetUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}
