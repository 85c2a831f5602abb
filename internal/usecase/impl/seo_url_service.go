package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courseadmin/config"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/errors"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSEOPriority = 0.5

type seoURLService struct {
	seoURLRepo repository.SEOURLRepository
	notifier   contentNotifier
	config     *config.Config
	now        func() time.Time
}

// SEOURLServiceParams holds dependencies for SEOURLService, injected by Fx.
type SEOURLServiceParams struct {
	fx.In

	SEOURLRepo repository.SEOURLRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSEOURLService creates a new SEO URL service instance
func NewSEOURLService(params SEOURLServiceParams) usecase.SEOURLUsecase {
	return &seoURLService{
		seoURLRepo: params.SEOURLRepo,
		notifier:   newContentNotifier(params.Publisher, params.Logger),
		config:     params.Config,
		now:        time.Now,
	}
}

// CreateSEOURL persists meta tags for a URL that has none yet.
func (s *seoURLService) CreateSEOURL(ctx context.Context, input *usecase.SEOURLInput) (*entity.SEOURL, error) {
	now := s.now()
	seoURL := &entity.SEOURL{
		ID:        uuid.New(),
		Keywords:  nonNil(input.Keywords),
		Priority:  defaultSEOPriority,
		IsActive:  boolOr(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.URL != nil {
		seoURL.URL = strings.TrimSpace(*input.URL)
	}
	if input.Title != nil {
		seoURL.Title = *input.Title
	}
	if input.MetaDescription != nil {
		seoURL.MetaDescription = *input.MetaDescription
	}
	if input.Priority != nil {
		seoURL.Priority = *input.Priority
	}

	if err := validateSEOURL(seoURL); err != nil {
		return nil, err
	}

	if err := s.ensureURLFree(ctx, seoURL); err != nil {
		return nil, err
	}

	if err := s.seoURLRepo.Create(ctx, seoURL); err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, domainerrors.ErrSEOURLTaken, "create seo url")
	}

	s.notifier.notify(ctx, resourceSEOURL, service.ActionCreated, seoURL.ID)

	return seoURL, nil
}

// GetSEOURL retrieves an SEO entry by ID
func (s *seoURLService) GetSEOURL(ctx context.Context, id uuid.UUID) (*entity.SEOURL, error) {
	seoURL, err := s.seoURLRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, nil, "find seo url")
	}

	return seoURL, nil
}

// ListSEOURLs returns one page of SEO entries
func (s *seoURLService) ListSEOURLs(ctx context.Context, filter entity.SEOURLFilter, page entity.Page) (*entity.PageResult[*entity.SEOURL], error) {
	page = normalizePage(s.config, page)
	seoURLs, total, err := s.seoURLRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, nil, "list seo urls")
	}

	return entity.NewPageResult(seoURLs, total, page), nil
}

// UpdateSEOURL applies a partial update
func (s *seoURLService) UpdateSEOURL(ctx context.Context, id uuid.UUID, input *usecase.SEOURLInput) (*entity.SEOURL, error) {
	seoURL, err := s.seoURLRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, nil, "find seo url")
	}

	urlChanged := false
	if input.URL != nil {
		url := strings.TrimSpace(*input.URL)
		urlChanged = url != seoURL.URL
		seoURL.URL = url
	}
	if input.Title != nil {
		seoURL.Title = *input.Title
	}
	if input.MetaDescription != nil {
		seoURL.MetaDescription = *input.MetaDescription
	}
	if input.Keywords != nil {
		seoURL.Keywords = input.Keywords
	}
	if input.Priority != nil {
		seoURL.Priority = *input.Priority
	}
	if input.IsActive != nil {
		seoURL.IsActive = *input.IsActive
	}

	if err := validateSEOURL(seoURL); err != nil {
		return nil, err
	}
	if urlChanged {
		if err := s.ensureURLFree(ctx, seoURL); err != nil {
			return nil, err
		}
	}

	seoURL.UpdatedAt = s.now()
	if err := s.seoURLRepo.Update(ctx, seoURL); err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, domainerrors.ErrSEOURLTaken, "update seo url")
	}

	s.notifier.notify(ctx, resourceSEOURL, service.ActionUpdated, seoURL.ID)

	return seoURL, nil
}

// UpdateSEOURLPriority changes only the sitemap priority
func (s *seoURLService) UpdateSEOURLPriority(ctx context.Context, id uuid.UUID, priority float64) (*entity.SEOURL, error) {
	if priority < 0 || priority > 1 {
		return nil, domainerrors.NewValidationError(domainerrors.Issue{Field: "priority", Message: "priority must be between 0 and 1"})
	}

	if err := s.seoURLRepo.UpdatePriority(ctx, id, priority); err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, nil, "update seo url priority")
	}

	seoURL, err := s.seoURLRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSEOURLNotFound, nil, "find seo url")
	}

	s.notifier.notify(ctx, resourceSEOURL, service.ActionUpdated, id)

	return seoURL, nil
}

// DeleteSEOURL deactivates the entry; the row and its URL reservation are kept.
func (s *seoURLService) DeleteSEOURL(ctx context.Context, id uuid.UUID) error {
	if err := s.seoURLRepo.Deactivate(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrSEOURLNotFound, nil, "deactivate seo url")
	}

	s.notifier.notify(ctx, resourceSEOURL, service.ActionDeactivated, id)

	return nil
}

func (s *seoURLService) ensureURLFree(ctx context.Context, seoURL *entity.SEOURL) error {
	existing, err := s.seoURLRepo.FindByURL(ctx, seoURL.URL)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, domainerrors.ErrSEOURLNotFound, nil, "find seo url by url")
	}
	if existing.ID == seoURL.ID {
		return nil
	}

	return domainerrors.ErrSEOURLTaken
}

func validateSEOURL(seoURL *entity.SEOURL) error {
	verr := domainerrors.NewValidationError()
	if seoURL.URL == "" {
		verr.Add("url", "SEO url is required.")
	}
	if seoURL.Priority < 0 || seoURL.Priority > 1 {
		verr.Add("priority", "priority must be between 0 and 1")
	}

	return verr.OrNil()
}
