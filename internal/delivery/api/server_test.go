package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courseadmin/config"
	apimiddleware "courseadmin/internal/delivery/api/middleware"
	"courseadmin/internal/delivery/api/router"
	"courseadmin/internal/delivery/api/router/handler"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/infra/auth"
	"courseadmin/internal/infra/persistence/memory"
	"courseadmin/internal/infra/pubsub"
	"courseadmin/internal/infra/qrcode"
	"courseadmin/internal/infra/ratelimit"
	"courseadmin/internal/infra/storage"
	mockservice "courseadmin/internal/mocks/service"
	"courseadmin/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const testPublicBaseURL = "https://cdn.test"

type testEnvelope struct {
	State   int                  `json:"state"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Errors  []domainerrors.Issue `json:"errors"`
	Meta    struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiHarness struct {
	echo   *echo.Echo
	tokens service.TokenService
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:       &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour},
		Assets:     &config.AssetsConfig{MaxImageWidth: 64, MaxUploadSize: 1 << 20},
		Pagination: &config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100, LeaderboardLimit: 10},
		RateLimit:  &config.RateLimitConfig{LoginPerWindow: 5, CouponValidatePerWindow: 5, Window: time.Minute},
		Bootstrap:  &config.BootstrapConfig{Email: "root@example.com", Name: "Root", Password: "s3cret-pass"},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func newAPIHarness(t *testing.T, limiter service.RateLimiter) *apiHarness {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := memory.Open()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	objects := storage.NewBlobStorage(bucket, "", testPublicBaseURL)
	images := storage.NewImageProcessor(cfg)
	publisher := pubsub.NewNoopPublisher(logger)
	txManager := memory.NewTransactionManager(db)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AdminRepo:    memory.NewAdminRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, authUC.EnsureBootstrapAdmin(context.Background()))

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		BannerHandler: handler.NewBannerHandler(handler.BannerHandlerParams{
			BannerUC: impl.NewBannerService(impl.BannerServiceParams{
				TxManager:      txManager,
				BannerRepo:     memory.NewBannerRepository(db),
				Storage:        objects,
				ImageProcessor: images,
				Publisher:      publisher,
				Config:         cfg,
				Logger:         logger,
			}),
			Config: cfg,
			Logger: logger,
		}),
		CouponHandler: handler.NewCouponHandler(handler.CouponHandlerParams{
			CouponUC: impl.NewCouponService(impl.CouponServiceParams{
				CouponRepo:    memory.NewCouponRepository(db),
				QRCodeService: qrcode.NewQRCodeService(cfg),
				Publisher:     publisher,
				Config:        cfg,
				Logger:        logger,
			}),
			Logger: logger,
		}),
		PlanHandler: handler.NewPlanHandler(handler.PlanHandlerParams{
			PlanUC: impl.NewPlanService(impl.PlanServiceParams{
				TxManager: txManager,
				PlanRepo:  memory.NewPlanRepository(db),
				Publisher: publisher,
				Config:    cfg,
				Logger:    logger,
			}),
			Logger: logger,
		}),
		SectionHandler: handler.NewSectionHandler(handler.SectionHandlerParams{
			SectionUC: impl.NewSectionService(impl.SectionServiceParams{
				SectionRepo: memory.NewSectionRepository(db),
				Publisher:   publisher,
				Config:      cfg,
				Logger:      logger,
			}),
			Logger: logger,
		}),
		TeacherHandler: handler.NewTeacherHandler(handler.TeacherHandlerParams{
			TeacherUC: impl.NewTeacherService(impl.TeacherServiceParams{
				TeacherRepo:    memory.NewTeacherRepository(db),
				Storage:        objects,
				ImageProcessor: images,
				Publisher:      publisher,
				Config:         cfg,
				Logger:         logger,
			}),
			Config: cfg,
			Logger: logger,
		}),
		RankScoreHandler: handler.NewRankScoreHandler(handler.RankScoreHandlerParams{
			RankScoreUC: impl.NewRankScoreService(impl.RankScoreServiceParams{
				RankScoreRepo: memory.NewRankScoreRepository(db),
				Publisher:     publisher,
				Config:        cfg,
				Logger:        logger,
			}),
			Logger: logger,
		}),
		SEOURLHandler: handler.NewSEOURLHandler(handler.SEOURLHandlerParams{
			SEOURLUC: impl.NewSEOURLService(impl.SEOURLServiceParams{
				SEOURLRepo: memory.NewSEOURLRepository(db),
				Publisher:  publisher,
				Config:     cfg,
				Logger:     logger,
			}),
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
		RateLimit:      apimiddleware.NewRateLimitMiddleware(limiter, cfg, logger),
	}

	return &apiHarness{echo: NewEcho(cfg, logger, routerParams), tokens: tokens}
}

func (h *apiHarness) token(t *testing.T, role entity.Role) string {
	t.Helper()

	token, err := h.tokens.GenerateAccessToken(uuid.New(), role)
	require.NoError(t, err)

	return token
}

func (h *apiHarness) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_HealthIsPublic(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_RequiresToken(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodGet, "/api/v1/banners", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeEnvelope(t, rec).State)

	rec = h.do(t, http.MethodGet, "/api/v1/banners", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_LoginAndMe(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":" ROOT@example.com ","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		AccessToken string        `json:"accessToken"`
		Admin       *entity.Admin `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &login))
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, entity.RoleSuperAdmin, login.Admin.Role)

	rec = h.do(t, http.MethodGet, "/api/v1/auth/me", login.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"root@example.com"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = h.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"root@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_RoleGating(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())
	dataEntry := h.token(t, entity.RoleDataEntry)
	admin := h.token(t, entity.RoleAdmin)

	rec := h.do(t, http.MethodPost, "/api/v1/sections", dataEntry, `{"name":"Frontend"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var section entity.Section
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &section))

	rec = h.do(t, http.MethodDelete, "/api/v1/sections/"+section.ID.String(), dataEntry, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodDelete, "/api/v1/sections/"+section.ID.String(), admin, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodDelete, "/api/v1/sections/"+section.ID.String(), admin, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/admins", admin, `{"email":"x@example.com","name":"X","password":"longenough","role":"admin"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_ValidationAndConflictEnvelopes(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())
	token := h.token(t, entity.RoleAdmin)

	rec := h.do(t, http.MethodPost, "/api/v1/sections", token, `{"description":"no name"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusBadRequest, env.State)
	assert.Equal(t, []domainerrors.Issue{{Field: "name", Message: "Section name is required."}}, env.Errors)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec = h.do(t, http.MethodPost, "/api/v1/sections", token, `{"name":"Backend"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/sections", token, `{"name":"Backend"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/sections/not-a-uuid", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/sections", token, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_EmptyListIsOK(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodGet, "/api/v1/teachers?page=1&limit=5", h.token(t, entity.RoleDataEntry), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page entity.PageResult[entity.Teacher]
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Limit)
}

func TestAPI_CouponLifecycle(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())
	token := h.token(t, entity.RoleAdmin)

	rec := h.do(t, http.MethodPost, "/api/v1/coupons", token,
		`{"code":"save10","type":"percentage","discountValue":"10","startDate":"2020-01-01","expireDate":"2999-12-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var coupon entity.Coupon
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &coupon))
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.InDelta(t, 10.0, coupon.DiscountValue, 0.0001)
	assert.Equal(t, 1, coupon.UsageLimitPerUser)

	rec = h.do(t, http.MethodPost, "/api/v1/coupons/validate", h.token(t, entity.RoleDataEntry), `{"code":"Save10"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"valid":true`)

	rec = h.do(t, http.MethodPost, "/api/v1/coupons/validate", token, `{"code":"NOPE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"COUPON_NOT_FOUND"`)

	rec = h.do(t, http.MethodGet, "/api/v1/coupons/"+coupon.ID.String()+"/qr", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestAPI_CouponRejectsInvertedDates(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodPost, "/api/v1/coupons", h.token(t, entity.RoleAdmin),
		`{"code":"late","type":"fixed","discountValue":5,"startDate":"2025-02-01","expireDate":"2025-01-01"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "expireDate", env.Errors[0].Field)
}

func errorFields(env testEnvelope) []string {
	fields := make([]string, 0, len(env.Errors))
	for _, issue := range env.Errors {
		fields = append(fields, issue.Field)
	}

	return fields
}

func TestAPI_RejectsNonFiniteAndOversizedNumbers(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())
	token := h.token(t, entity.RoleAdmin)

	for _, value := range []string{`"Infinity"`, `"NaN"`, `1e400`} {
		rec := h.do(t, http.MethodPost, "/api/v1/coupons", token,
			`{"code":"inf","type":"fixed","discountValue":`+value+`,"startDate":"2020-01-01","expireDate":"2999-12-31"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, value)
		assert.Equal(t, []string{"discountValue"}, errorFields(decodeEnvelope(t, rec)), value)
	}

	rec := h.do(t, http.MethodGet, "/api/v1/coupons", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/api/v1/banners", token,
		`{"title":"Huge","imageUrl":"https://cdn.example.com/a.jpg","redirectUrl":"https://example.com","priority":1e300}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"priority"}, errorFields(decodeEnvelope(t, rec)))

	rec = h.do(t, http.MethodGet, "/api/v1/teachers?page=1e17", h.token(t, entity.RoleDataEntry), "")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"page"}, errorFields(decodeEnvelope(t, rec)))
}

func TestAPI_BannerCreateRequiresRedirectURL(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	rec := h.do(t, http.MethodPost, "/api/v1/banners", h.token(t, entity.RoleAdmin),
		`{"title":"No target","imageUrl":"https://cdn.example.com/a.jpg"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"redirectUrl"}, errorFields(decodeEnvelope(t, rec)))
}

func TestAPI_BannerMultipartUpload(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())

	var img bytes.Buffer
	canvas := image.NewRGBA(image.Rect(0, 0, 128, 32))
	canvas.Set(1, 1, color.RGBA{R: 255, A: 255})
	require.NoError(t, png.Encode(&img, canvas))

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("title", "Spring sale"))
	require.NoError(t, form.WriteField("redirectUrl", "https://example.com/sale"))
	part, err := form.CreateFormFile("image", "banner.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banners", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+h.token(t, entity.RoleDataEntry))
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var banner entity.Banner
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &banner))
	assert.True(t, strings.HasPrefix(banner.ImageURL, testPublicBaseURL+"/"), banner.ImageURL)
	assert.Equal(t, 1, banner.Priority)
	assert.True(t, banner.IsActive)
}

func TestAPI_Leaderboard(t *testing.T) {
	h := newAPIHarness(t, ratelimit.NewNoopLimiter())
	token := h.token(t, entity.RoleDataEntry)

	for _, body := range []string{
		`{"userId":"A","courseId":"C","rankScore":80,"levelScore":40,"level":"Medium"}`,
		`{"userId":"A","courseId":"C","rankScore":"90","levelScore":45,"level":"Advanced"}`,
		`{"userId":"B","courseId":"C","rankScore":95,"levelScore":47,"level":"Pro"}`,
	} {
		rec := h.do(t, http.MethodPost, "/api/v1/rank-scores", token, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := h.do(t, http.MethodGet, "/api/v1/rank-scores/courses/C/leaderboard", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var board []entity.LeaderboardEntry
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &board))
	require.Len(t, board, 2)
	assert.Equal(t, "B", board[0].UserID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "A", board[1].UserID)
	assert.Equal(t, 90, board[1].MaxRankScore)
	assert.Equal(t, 2, board[1].Attempts)

	rec = h.do(t, http.MethodGet, "/api/v1/rank-scores/max?userId=A&courseId=C", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rankScore":90`)

	rec = h.do(t, http.MethodPost, "/api/v1/rank-scores", token,
		`{"userId":"A","courseId":"C","rankScore":101,"levelScore":10,"level":"Pro"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CouponValidationIsRateLimited(t *testing.T) {
	limiter := mockservice.NewMockRateLimiter(t)
	limiter.EXPECT().
		Allow(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "coupon_validate:") }), 5, time.Minute).
		Return(false, 30*time.Second, nil)

	h := newAPIHarness(t, limiter)

	rec := h.do(t, http.MethodPost, "/api/v1/coupons/validate", h.token(t, entity.RoleAdmin), `{"code":"ANY"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get(echo.HeaderRetryAfter))
}
