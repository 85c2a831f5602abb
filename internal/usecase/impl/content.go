// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"log/slog"
	"path"
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
)

// Resource names carried by content events.
const (
	resourceBanner    = "banner"
	resourceCoupon    = "coupon"
	resourcePlan      = "plan"
	resourceSection   = "section"
	resourceTeacher   = "teacher"
	resourceRankScore = "rank_score"
	resourceSEOURL    = "seo_url"
)

// normalizePage applies the configured defaults and clamps the limit.
func normalizePage(cfg *config.Config, page entity.Page) entity.Page {
	defaultLimit, maxLimit := cfg.PageLimits()
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultLimit
	}
	if page.Limit > maxLimit {
		page.Limit = maxLimit
	}

	return page
}

// storeError maps a repository error onto the entity's domain errors.
// conflict may be nil for entities without unique fields.
func storeError(err error, notFound, conflict *domainerrors.BaseError, op string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case conflict != nil && errors.Is(err, repository.ErrDuplicate):
		return conflict
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// contentNotifier publishes content events after successful mutations.
// Publishing is best effort: a failed publish is logged and never undoes the write.
type contentNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newContentNotifier(publisher service.EventPublisher, logger *slog.Logger) contentNotifier {
	return contentNotifier{publisher: publisher, logger: logger, now: time.Now}
}

func (n contentNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

func (n contentNotifier) notify(ctx context.Context, resource, action string, id uuid.UUID) {
	if n.publisher == nil {
		return
	}

	event := &service.ContentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Resource:   resource,
		Action:     action,
		ResourceID: id.String(),
		ActorID:    deliverycontext.GetActorID(ctx),
		OccurredAt: n.now().UTC(),
	}
	if err := n.publisher.PublishContentEvent(ctx, event); err != nil {
		n.log(ctx).Warn("Failed to publish content event",
			slog.String("resource", resource),
			slog.String("action", action),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
		)
	}
}

// assetStore normalises and uploads images and cleans up replaced ones.
type assetStore struct {
	storage service.ObjectStorage
	images  service.ImageProcessor
}

// put stores upload under folder and returns its key and URL.
func (a assetStore) put(ctx context.Context, folder string, upload *usecase.AssetUpload) (*service.StoredObject, error) {
	data, contentType, ext, err := a.images.Normalize(upload.Data)
	if err != nil {
		return nil, domainerrors.ErrUnsupportedImage.WithDetails(err.Error())
	}

	key := path.Join(folder, uuid.NewString()+ext)
	obj, err := a.storage.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, domainerrors.ErrAssetUploadFailed.WithDetails(err.Error())
	}

	return obj, nil
}

// discard removes keys, logging failures instead of returning them.
func (a assetStore) discard(ctx context.Context, logger *slog.Logger, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := a.storage.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete stored asset", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// checkDateRange adds an issue when both ends are set and end precedes start.
func checkDateRange(verr *domainerrors.ValidationError, start, end *time.Time, field, message string) {
	if start != nil && end != nil && end.Before(*start) {
		verr.Add(field, message)
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}
