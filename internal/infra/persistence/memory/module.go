package memory

import "go.uber.org/fx"

// Module provides the in-process store and its repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		Open,
		NewTransactionManager,
		NewAdminRepository,
		NewBannerRepository,
		NewCouponRepository,
		NewPlanRepository,
		NewRankScoreRepository,
		NewSectionRepository,
		NewSEOURLRepository,
		NewTeacherRepository,
	),
)
