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

const bannerAssetFolder = "banners"

type bannerService struct {
	txManager  repository.TransactionManager
	bannerRepo repository.BannerRepository
	assets     assetStore
	notifier   contentNotifier
	config     *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// BannerServiceParams holds dependencies for BannerService, injected by Fx.
type BannerServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	BannerRepo     repository.BannerRepository
	Storage        service.ObjectStorage
	ImageProcessor service.ImageProcessor
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewBannerService creates a new banner service instance
func NewBannerService(params BannerServiceParams) usecase.BannerUsecase {
	return &bannerService{
		txManager:  params.TxManager,
		bannerRepo: params.BannerRepo,
		assets:     assetStore{storage: params.Storage, images: params.ImageProcessor},
		notifier:   newContentNotifier(params.Publisher, params.Logger),
		config:     params.Config,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *bannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateBanner uploads any attached images, assigns a priority when none was
// given and persists the banner.
func (s *bannerService) CreateBanner(ctx context.Context, input *usecase.CreateBannerInput) (*entity.Banner, error) {
	verr := domainerrors.NewValidationError()
	if input.Image == nil && input.ImageURL == "" {
		verr.Add("imageUrl", "Banner image is required.")
	}
	if strings.TrimSpace(input.RedirectURL) == "" {
		verr.Add("redirectUrl", "Redirect URL is required.")
	}
	checkDateRange(verr, input.StartDate, input.EndDate, "endDate", "endDate must be on or after startDate")
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := s.now()
	banner := &entity.Banner{
		ID:             uuid.New(),
		Title:          input.Title,
		ImageURL:       input.ImageURL,
		MobileImageURL: input.MobileImageURL,
		RedirectURL:    input.RedirectURL,
		IsActive:       boolOr(input.IsActive, true),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	uploaded, err := s.uploadBannerImages(ctx, banner, input.Image, input.MobileImage)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBannerRepository()

		if input.Priority == nil {
			maxPriority, err := repo.MaxActivePriority(ctx)
			if err != nil {
				return storeError(err, domainerrors.ErrBannerNotFound, nil, "find max active banner priority")
			}
			banner.Priority = maxPriority + 1
		} else {
			banner.Priority = *input.Priority
			if banner.IsActive {
				if err := s.ensurePriorityFree(ctx, repo, banner); err != nil {
					return err
				}
			}
		}

		if err := repo.Create(ctx, banner); err != nil {
			return storeError(err, domainerrors.ErrBannerNotFound, domainerrors.ErrBannerPriorityTaken, "create banner")
		}

		return nil
	})
	if err != nil {
		s.assets.discard(ctx, s.log(ctx), uploaded...)

		return nil, err
	}

	s.log(ctx).Info("Banner created", slog.Any("bannerID", banner.ID), slog.Int("priority", banner.Priority))
	s.notifier.notify(ctx, resourceBanner, service.ActionCreated, banner.ID)

	return banner, nil
}

// GetBanner retrieves a banner by ID
func (s *bannerService) GetBanner(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBannerNotFound, nil, "find banner")
	}

	return banner, nil
}

// ListBanners returns one page of banners ordered by priority
func (s *bannerService) ListBanners(ctx context.Context, filter entity.BannerFilter, page entity.Page) (*entity.PageResult[*entity.Banner], error) {
	page = normalizePage(s.config, page)
	banners, total, err := s.bannerRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBannerNotFound, nil, "list banners")
	}

	return entity.NewPageResult(banners, total, page), nil
}

// UpdateBanner applies a partial update. New images are uploaded before the
// record is written; the images they replace are removed only after it is.
func (s *bannerService) UpdateBanner(ctx context.Context, id uuid.UUID, input *usecase.UpdateBannerInput) (*entity.Banner, error) {
	staged := &entity.Banner{}
	uploaded, err := s.uploadBannerImages(ctx, staged, input.Image, input.MobileImage)
	if err != nil {
		return nil, err
	}

	var (
		updated  *entity.Banner
		replaced []string
	)
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBannerRepository()

		banner, err := repo.FindByID(ctx, id)
		if err != nil {
			return storeError(err, domainerrors.ErrBannerNotFound, nil, "find banner")
		}

		replaced = applyBannerUpdate(banner, input, staged)

		verr := domainerrors.NewValidationError()
		if banner.ImageURL == "" {
			verr.Add("imageUrl", "Banner image is required.")
		}
		checkDateRange(verr, banner.StartDate, banner.EndDate, "endDate", "endDate must be on or after startDate")
		if err := verr.OrNil(); err != nil {
			return err
		}

		if banner.IsActive && (input.Priority != nil || input.IsActive != nil) {
			if err := s.ensurePriorityFree(ctx, repo, banner); err != nil {
				return err
			}
		}

		banner.UpdatedAt = s.now()
		if err := repo.Update(ctx, banner); err != nil {
			return storeError(err, domainerrors.ErrBannerNotFound, domainerrors.ErrBannerPriorityTaken, "update banner")
		}
		updated = banner

		return nil
	})
	if err != nil {
		s.assets.discard(ctx, s.log(ctx), uploaded...)

		return nil, err
	}

	s.assets.discard(ctx, s.log(ctx), replaced...)
	s.notifier.notify(ctx, resourceBanner, service.ActionUpdated, updated.ID)

	return updated, nil
}

// DeleteBanner removes the banner, then the images it owned.
func (s *bannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, domainerrors.ErrBannerNotFound, nil, "find banner")
	}

	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrBannerNotFound, nil, "delete banner")
	}

	s.assets.discard(ctx, s.log(ctx), banner.AssetKeys()...)
	s.notifier.notify(ctx, resourceBanner, service.ActionDeleted, id)

	return nil
}

// ToggleBanner flips isActive. Activating checks that no other active banner
// holds the same priority; on conflict the banner is left untouched.
func (s *bannerService) ToggleBanner(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var toggled *entity.Banner
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBannerRepository()

		banner, err := repo.FindByID(ctx, id)
		if err != nil {
			return storeError(err, domainerrors.ErrBannerNotFound, nil, "find banner")
		}

		banner.IsActive = !banner.IsActive
		if banner.IsActive {
			if err := s.ensurePriorityFree(ctx, repo, banner); err != nil {
				return err
			}
		}

		banner.UpdatedAt = s.now()
		if err := repo.Update(ctx, banner); err != nil {
			return storeError(err, domainerrors.ErrBannerNotFound, domainerrors.ErrBannerPriorityTaken, "toggle banner")
		}
		toggled = banner

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Banner toggled", slog.Any("bannerID", id), slog.Bool("isActive", toggled.IsActive))
	s.notifier.notify(ctx, resourceBanner, service.ActionToggled, id)

	return toggled, nil
}

// ensurePriorityFree fails when another active banner already holds banner.Priority.
func (s *bannerService) ensurePriorityFree(ctx context.Context, repo repository.BannerRepository, banner *entity.Banner) error {
	holder, err := repo.FindActiveByPriority(ctx, banner.Priority)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, domainerrors.ErrBannerNotFound, nil, "find banner by priority")
	}
	if holder.ID == banner.ID {
		return nil
	}

	return domainerrors.ErrBannerPriorityTaken.WithDetails("priority is held by banner " + holder.ID.String())
}

// uploadBannerImages stores the given files and records their key and URL on
// target. It returns every key it created so callers can roll them back.
func (s *bannerService) uploadBannerImages(ctx context.Context, target *entity.Banner, image, mobile *usecase.AssetUpload) ([]string, error) {
	var keys []string

	if image != nil {
		obj, err := s.assets.put(ctx, bannerAssetFolder, image)
		if err != nil {
			return nil, err
		}
		target.ImageKey, target.ImageURL = obj.Key, obj.URL
		keys = append(keys, obj.Key)
	}

	if mobile != nil {
		obj, err := s.assets.put(ctx, bannerAssetFolder, mobile)
		if err != nil {
			s.assets.discard(ctx, s.log(ctx), keys...)

			return nil, err
		}
		target.MobileImageKey, target.MobileImageURL = obj.Key, obj.URL
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// applyBannerUpdate merges input into banner and returns the asset keys that
// are no longer referenced.
func applyBannerUpdate(banner *entity.Banner, input *usecase.UpdateBannerInput, staged *entity.Banner) []string {
	var replaced []string

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.RedirectURL != nil {
		banner.RedirectURL = *input.RedirectURL
	}
	if input.Priority != nil {
		banner.Priority = *input.Priority
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.StartDate != nil {
		banner.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		banner.EndDate = input.EndDate
	}

	switch {
	case staged.ImageKey != "":
		replaced = append(replaced, banner.ImageKey)
		banner.ImageKey, banner.ImageURL = staged.ImageKey, staged.ImageURL
	case input.ImageURL != nil && *input.ImageURL != banner.ImageURL:
		replaced = append(replaced, banner.ImageKey)
		banner.ImageKey, banner.ImageURL = "", *input.ImageURL
	}

	switch {
	case staged.MobileImageKey != "":
		replaced = append(replaced, banner.MobileImageKey)
		banner.MobileImageKey, banner.MobileImageURL = staged.MobileImageKey, staged.MobileImageURL
	case input.MobileImageURL != nil && *input.MobileImageURL != banner.MobileImageURL:
		replaced = append(replaced, banner.MobileImageKey)
		banner.MobileImageKey, banner.MobileImageURL = "", *input.MobileImageURL
	}

	return replaced
}
