package handler

import (
	"log/slog"
	"strings"

	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RankScoreHandlerParams holds dependencies for RankScoreHandler, injected by Fx.
type RankScoreHandlerParams struct {
	fx.In

	RankScoreUC usecase.RankScoreUsecase
	Logger      *slog.Logger
}

// RankScoreHandler serves /rank-scores and its aggregate views
type RankScoreHandler struct {
	rankScoreUC usecase.RankScoreUsecase
	logger      *slog.Logger
}

// NewRankScoreHandler is the constructor for RankScoreHandler
func NewRankScoreHandler(params RankScoreHandlerParams) *RankScoreHandler {
	return &RankScoreHandler{
		rankScoreUC: params.RankScoreUC,
		logger:      params.Logger,
	}
}

type recordRankScoreRequest struct {
	UserID     request.Text   `json:"userId" validate:"notblank"`
	CourseID   request.Text   `json:"courseId" validate:"notblank"`
	RankScore  request.Number `json:"rankScore" validate:"present,numeric,integer,min=0,max=100"`
	LevelScore request.Number `json:"levelScore" validate:"present,numeric,integer,min=0,max=100"`
	Level      request.Text   `json:"level" validate:"notblank,oneof=Beginner Medium Advanced Pro"`
}

type rankScoreListQuery struct {
	listQuery
	UserID   request.Text `query:"userId"`
	CourseID request.Text `query:"courseId"`
	Level    request.Text `query:"level" validate:"omitempty,oneof=Beginner Medium Advanced Pro"`
}

type maxScoreQuery struct {
	UserID   request.Text `query:"userId" validate:"notblank"`
	CourseID request.Text `query:"courseId" validate:"notblank"`
}

type leaderboardQuery struct {
	Limit request.Number `query:"limit" validate:"omitempty,numeric,integer,min=1"`
}

// RecordRankScore handles POST /rank-scores
func (h *RankScoreHandler) RecordRankScore(c echo.Context) error {
	var req recordRankScoreRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	score, err := h.rankScoreUC.RecordRankScore(c.Request().Context(), &usecase.RecordRankScoreInput{
		UserID:     req.UserID.Value(),
		CourseID:   req.CourseID.Value(),
		RankScore:  req.RankScore.Int(),
		LevelScore: req.LevelScore.Int(),
		Level:      entity.Level(req.Level.Value()),
	})
	if err != nil {
		return err
	}

	return response.Created(c, score, "Rank score recorded successfully")
}

// GetRankScore handles GET /rank-scores/:id
func (h *RankScoreHandler) GetRankScore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	score, err := h.rankScoreUC.GetRankScore(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, score, "Rank score retrieved successfully")
}

// ListRankScores handles GET /rank-scores
func (h *RankScoreHandler) ListRankScores(c echo.Context) error {
	var query rankScoreListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	filter := entity.RankScoreFilter{
		UserID:   strings.TrimSpace(query.UserID.Value()),
		CourseID: strings.TrimSpace(query.CourseID.Value()),
		Level:    entity.Level(query.Level.Value()),
	}
	result, err := h.rankScoreUC.ListRankScores(c.Request().Context(), filter, query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Rank scores retrieved successfully")
}

// GetMaxScore handles GET /rank-scores/max?userId=&courseId=
func (h *RankScoreHandler) GetMaxScore(c echo.Context) error {
	var query maxScoreQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	score, err := h.rankScoreUC.GetMaxScore(c.Request().Context(), strings.TrimSpace(query.UserID.Value()), strings.TrimSpace(query.CourseID.Value()))
	if err != nil {
		return err
	}

	return response.OK(c, score, "Max rank score retrieved successfully")
}

// GetUserSummary handles GET /rank-scores/users/:userId/summary
func (h *RankScoreHandler) GetUserSummary(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return domainerrors.NewValidationError(domainerrors.Issue{Field: "userId", Message: "userId is required"})
	}

	summary, err := h.rankScoreUC.GetUserSummary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, summary, "User summary retrieved successfully")
}

// GetLeaderboard handles GET /rank-scores/courses/:courseId/leaderboard?limit=
func (h *RankScoreHandler) GetLeaderboard(c echo.Context) error {
	courseID := strings.TrimSpace(c.Param("courseId"))
	if courseID == "" {
		return domainerrors.NewValidationError(domainerrors.Issue{Field: "courseId", Message: "courseId is required"})
	}

	var query leaderboardQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	board, err := h.rankScoreUC.GetLeaderboard(c.Request().Context(), courseID, query.Limit.Int())
	if err != nil {
		return err
	}

	return response.OK(c, board, "Leaderboard retrieved successfully")
}
