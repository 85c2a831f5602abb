package postgres

import "go.uber.org/fx"

// Module provides the PostgreSQL connection and every repository backed by it
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
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
