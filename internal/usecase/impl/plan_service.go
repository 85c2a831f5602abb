package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"courseadmin/config"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type planService struct {
	txManager repository.TransactionManager
	planRepo  repository.PlanRepository
	notifier  contentNotifier
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PlanRepo  repository.PlanRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlanService creates a new subscription plan service instance
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		txManager: params.TxManager,
		planRepo:  params.PlanRepo,
		notifier:  newContentNotifier(params.Publisher, params.Logger),
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreatePlan persists a plan after checking that every referenced coupon exists.
func (s *planService) CreatePlan(ctx context.Context, input *usecase.CreatePlanInput) (*entity.Plan, error) {
	now := s.now()
	plan := &entity.Plan{
		ID:             uuid.New(),
		Name:           input.Name,
		Title:          input.Title,
		Amount:         input.Amount,
		DurationInDays: input.DurationInDays,
		Priority:       input.Priority,
		Status:         input.Status,
		CourseIDs:      nonNil(input.CourseIDs),
		EbookIDs:       nonNil(input.EbookIDs),
		CouponIDs:      dedupeIDs(input.CouponIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if plan.Status == "" {
		plan.Status = entity.StatusActive
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := checkCouponRefs(ctx, factory.NewCouponRepository(), plan.CouponIDs); err != nil {
			return err
		}
		if err := factory.NewPlanRepository().Create(ctx, plan); err != nil {
			return storeError(err, domainerrors.ErrPlanNotFound, nil, "create plan")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Plan created", slog.Any("planID", plan.ID), slog.String("name", plan.Name))
	s.notifier.notify(ctx, resourcePlan, service.ActionCreated, plan.ID)

	return plan, nil
}

// GetPlan retrieves a plan by ID
func (s *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrPlanNotFound, nil, "find plan")
	}

	return plan, nil
}

// ListPlans returns one page of plans ordered by priority
func (s *planService) ListPlans(ctx context.Context, filter entity.PlanFilter, page entity.Page) (*entity.PageResult[*entity.Plan], error) {
	page = normalizePage(s.config, page)
	plans, total, err := s.planRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrPlanNotFound, nil, "list plans")
	}

	return entity.NewPageResult(plans, total, page), nil
}

// UpdatePlan applies a partial update. Reference lists replace the stored ones when present.
func (s *planService) UpdatePlan(ctx context.Context, id uuid.UUID, input *usecase.UpdatePlanInput) (*entity.Plan, error) {
	var updated *entity.Plan
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewPlanRepository()

		plan, err := repo.FindByID(ctx, id)
		if err != nil {
			return storeError(err, domainerrors.ErrPlanNotFound, nil, "find plan")
		}

		if input.Name != nil {
			plan.Name = *input.Name
		}
		if input.Title != nil {
			plan.Title = *input.Title
		}
		if input.Amount != nil {
			plan.Amount = *input.Amount
		}
		if input.DurationInDays != nil {
			plan.DurationInDays = *input.DurationInDays
		}
		if input.Priority != nil {
			plan.Priority = *input.Priority
		}
		if input.Status != nil {
			plan.Status = *input.Status
		}
		if input.CourseIDs != nil {
			plan.CourseIDs = input.CourseIDs
		}
		if input.EbookIDs != nil {
			plan.EbookIDs = input.EbookIDs
		}
		if err := validatePlan(plan); err != nil {
			return err
		}
		if input.CouponIDs != nil {
			plan.CouponIDs = dedupeIDs(input.CouponIDs)
			if err := checkCouponRefs(ctx, factory.NewCouponRepository(), plan.CouponIDs); err != nil {
				return err
			}
		}

		plan.UpdatedAt = s.now()
		if err := repo.Update(ctx, plan); err != nil {
			return storeError(err, domainerrors.ErrPlanNotFound, nil, "update plan")
		}
		updated = plan

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.notify(ctx, resourcePlan, service.ActionUpdated, updated.ID)

	return updated, nil
}

// DeletePlan removes a plan permanently
func (s *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrPlanNotFound, nil, "delete plan")
	}

	s.notifier.notify(ctx, resourcePlan, service.ActionDeleted, id)

	return nil
}

// checkCouponRefs reports every id in ids that does not name a stored coupon.
func checkCouponRefs(ctx context.Context, coupons repository.CouponRepository, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := coupons.FindExistingIDs(ctx, ids)
	if err != nil {
		return storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupons")
	}

	verr := domainerrors.NewValidationError()
	for _, id := range ids {
		if !slices.Contains(existing, id) {
			verr.Add("couponIds", "coupon "+id.String()+" does not exist")
		}
	}

	return verr.OrNil()
}

// validatePlan checks a complete plan, before create or after merging an update.
func validatePlan(plan *entity.Plan) error {
	verr := domainerrors.NewValidationError()
	if strings.TrimSpace(plan.Name) == "" {
		verr.Add("name", "Plan name is required.")
	}
	if plan.Amount < 0 {
		verr.Add("amount", "amount must be greater than or equal to 0")
	}
	if plan.DurationInDays < 1 {
		verr.Add("durationInDays", "durationInDays must be at least 1")
	}
	if !plan.Status.IsValid() {
		verr.Add("status", "status must be one of: active, inactive")
	}

	return verr.OrNil()
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}

	return ss
}
