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

type sectionService struct {
	sectionRepo repository.SectionRepository
	notifier    contentNotifier
	config      *config.Config
	now         func() time.Time
}

// SectionServiceParams holds dependencies for SectionService, injected by Fx.
type SectionServiceParams struct {
	fx.In

	SectionRepo repository.SectionRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSectionService creates a new section service instance
func NewSectionService(params SectionServiceParams) usecase.SectionUsecase {
	return &sectionService{
		sectionRepo: params.SectionRepo,
		notifier:    newContentNotifier(params.Publisher, params.Logger),
		config:      params.Config,
		now:         time.Now,
	}
}

// CreateSection persists a section with a name no other section uses.
func (s *sectionService) CreateSection(ctx context.Context, input *usecase.SectionInput) (*entity.Section, error) {
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, domainerrors.NewValidationError(domainerrors.Issue{Field: "name", Message: "Section name is required."})
	}

	now := s.now()
	section := &entity.Section{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  boolOr(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != nil {
		section.Description = *input.Description
	}

	if err := s.ensureNameFree(ctx, section); err != nil {
		return nil, err
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, storeError(err, domainerrors.ErrSectionNotFound, domainerrors.ErrSectionNameTaken, "create section")
	}

	s.notifier.notify(ctx, resourceSection, service.ActionCreated, section.ID)

	return section, nil
}

// GetSection retrieves a section by ID
func (s *sectionService) GetSection(ctx context.Context, id uuid.UUID) (*entity.Section, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSectionNotFound, nil, "find section")
	}

	return section, nil
}

// ListSections returns one page of sections
func (s *sectionService) ListSections(ctx context.Context, filter entity.NamedFilter, page entity.Page) (*entity.PageResult[*entity.Section], error) {
	page = normalizePage(s.config, page)
	sections, total, err := s.sectionRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSectionNotFound, nil, "list sections")
	}

	return entity.NewPageResult(sections, total, page), nil
}

// UpdateSection applies a partial update; a renamed section is re-checked for uniqueness.
func (s *sectionService) UpdateSection(ctx context.Context, id uuid.UUID, input *usecase.SectionInput) (*entity.Section, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrSectionNotFound, nil, "find section")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.NewValidationError(domainerrors.Issue{Field: "name", Message: "Section name is required."})
		}
		if name != section.Name {
			section.Name = name
			if err := s.ensureNameFree(ctx, section); err != nil {
				return nil, err
			}
		}
	}
	if input.Description != nil {
		section.Description = *input.Description
	}
	if input.IsActive != nil {
		section.IsActive = *input.IsActive
	}

	section.UpdatedAt = s.now()
	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, storeError(err, domainerrors.ErrSectionNotFound, domainerrors.ErrSectionNameTaken, "update section")
	}

	s.notifier.notify(ctx, resourceSection, service.ActionUpdated, section.ID)

	return section, nil
}

// DeleteSection removes a section permanently
func (s *sectionService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrSectionNotFound, nil, "delete section")
	}

	s.notifier.notify(ctx, resourceSection, service.ActionDeleted, id)

	return nil
}

func (s *sectionService) ensureNameFree(ctx context.Context, section *entity.Section) error {
	existing, err := s.sectionRepo.FindByName(ctx, section.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, domainerrors.ErrSectionNotFound, nil, "find section by name")
	}
	if existing.ID == section.ID {
		return nil
	}

	return domainerrors.ErrSectionNameTaken
}
