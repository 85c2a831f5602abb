// Package router contains routing and server setup for the admin API.
package router

import (
	"courseadmin/internal/delivery/api/middleware"
	"courseadmin/internal/delivery/api/router/handler"
	"courseadmin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	BannerHandler    *handler.BannerHandler
	CouponHandler    *handler.CouponHandler
	PlanHandler      *handler.PlanHandler
	SectionHandler   *handler.SectionHandler
	TeacherHandler   *handler.TeacherHandler
	RankScoreHandler *handler.RankScoreHandler
	SEOURLHandler    *handler.SEOURLHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimit        *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	bannerHandler    *handler.BannerHandler
	couponHandler    *handler.CouponHandler
	planHandler      *handler.PlanHandler
	sectionHandler   *handler.SectionHandler
	teacherHandler   *handler.TeacherHandler
	rankScoreHandler *handler.RankScoreHandler
	seoURLHandler    *handler.SEOURLHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimit        *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		bannerHandler:    params.BannerHandler,
		couponHandler:    params.CouponHandler,
		planHandler:      params.PlanHandler,
		sectionHandler:   params.SectionHandler,
		teacherHandler:   params.TeacherHandler,
		rankScoreHandler: params.RankScoreHandler,
		seoURLHandler:    params.SEOURLHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimit:        params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// the only public route under /api/v1
	apiV1.POST("/auth/login", r.authHandler.Login, r.rateLimit.Login())

	secured := apiV1.Group("", r.authMiddleware.Authenticate)
	editors := r.authMiddleware.RequireRole(entity.ContentEditors...)
	managers := r.authMiddleware.RequireRole(entity.ContentManagers...)

	secured.GET("/auth/me", r.authHandler.Me)
	secured.POST("/admins", r.authHandler.CreateAdmin, r.authMiddleware.RequireRole(entity.RoleSuperAdmin))

	banners := secured.Group("/banners")
	{
		banners.POST("", r.bannerHandler.CreateBanner, editors)
		banners.GET("", r.bannerHandler.ListBanners)
		banners.GET("/:id", r.bannerHandler.GetBanner)
		banners.PUT("/:id", r.bannerHandler.UpdateBanner, editors)
		banners.DELETE("/:id", r.bannerHandler.DeleteBanner, managers)
		banners.PATCH("/:id/toggle", r.bannerHandler.ToggleBanner, managers)
	}

	coupons := secured.Group("/coupons")
	{
		coupons.POST("", r.couponHandler.CreateCoupon, editors)
		coupons.GET("", r.couponHandler.ListCoupons)
		coupons.POST("/validate", r.couponHandler.ValidateCoupon, r.rateLimit.CouponValidation())
		coupons.GET("/:id", r.couponHandler.GetCoupon)
		coupons.GET("/:id/qr", r.couponHandler.CouponQR)
		coupons.PUT("/:id", r.couponHandler.UpdateCoupon, editors)
		coupons.DELETE("/:id", r.couponHandler.DeleteCoupon, managers)
	}

	plans := secured.Group("/plans")
	{
		plans.POST("", r.planHandler.CreatePlan, editors)
		plans.GET("", r.planHandler.ListPlans)
		plans.GET("/:id", r.planHandler.GetPlan)
		plans.PUT("/:id", r.planHandler.UpdatePlan, editors)
		plans.DELETE("/:id", r.planHandler.DeletePlan, managers)
	}

	sections := secured.Group("/sections")
	{
		sections.POST("", r.sectionHandler.CreateSection, editors)
		sections.GET("", r.sectionHandler.ListSections)
		sections.GET("/:id", r.sectionHandler.GetSection)
		sections.PUT("/:id", r.sectionHandler.UpdateSection, editors)
		sections.DELETE("/:id", r.sectionHandler.DeleteSection, managers)
	}

	teachers := secured.Group("/teachers")
	{
		teachers.POST("", r.teacherHandler.CreateTeacher, editors)
		teachers.GET("", r.teacherHandler.ListTeachers)
		teachers.GET("/:id", r.teacherHandler.GetTeacher)
		teachers.PUT("/:id", r.teacherHandler.UpdateTeacher, editors)
		teachers.DELETE("/:id", r.teacherHandler.DeleteTeacher, managers)
	}

	rankScores := secured.Group("/rank-scores")
	{
		rankScores.POST("", r.rankScoreHandler.RecordRankScore)
		rankScores.GET("", r.rankScoreHandler.ListRankScores)
		rankScores.GET("/max", r.rankScoreHandler.GetMaxScore)
		rankScores.GET("/users/:userId/summary", r.rankScoreHandler.GetUserSummary)
		rankScores.GET("/courses/:courseId/leaderboard", r.rankScoreHandler.GetLeaderboard)
		rankScores.GET("/:id", r.rankScoreHandler.GetRankScore)
	}

	seoURLs := secured.Group("/seo-urls")
	{
		seoURLs.POST("", r.seoURLHandler.CreateSEOURL, editors)
		seoURLs.GET("", r.seoURLHandler.ListSEOURLs)
		seoURLs.GET("/:id", r.seoURLHandler.GetSEOURL)
		seoURLs.PUT("/:id", r.seoURLHandler.UpdateSEOURL, editors)
		seoURLs.PATCH("/:id/priority", r.seoURLHandler.UpdateSEOURLPriority, editors)
		seoURLs.DELETE("/:id", r.seoURLHandler.DeleteSEOURL, managers)
	}
}
