package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutriledger/config"
	apimiddleware "nutriledger/internal/delivery/api/middleware"
	"nutriledger/internal/delivery/api/response"
	"nutriledger/internal/delivery/api/router"
	"nutriledger/internal/delivery/api/router/handler"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/infra/auth"
	"nutriledger/internal/infra/persistence/sheet"
	mockSvc "nutriledger/internal/mocks/service"
	"nutriledger/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bowlEstimate = `{"meal_name":"Chicken rice bowl","calories":300,"protein":20,"carbs":40,` +
	`"sat_fat":2,"unsat_fat":5,"fiber":3,"sugar":4,"sodium":500,"potassium":400,"iron":1.5}`

type storeStatus struct{ configured bool }

func (s storeStatus) Backend() string  { return "memory" }
func (s storeStatus) Configured() bool { return s.configured }

type testServer struct {
	echo      *echo.Echo
	estimator *mockSvc.MockEstimator
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			PasswordMode:   "plaintext",
			AccessTokenTTL: time.Hour,
			AdminUsernames: []string{"root"},
		},
		Ledger: &config.LedgerConfig{Timezone: "UTC", PointsPerLog: 10, LeaderboardLimit: 50},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sheet.NewMemoryStore(sheet.Headers())
	userRepo := sheet.NewUserRepository(store)
	logRepo := sheet.NewFoodLogRepository(store)
	estimator := mockSvc.NewMockEstimator(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewPlaintextHasher(),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	ledger, err := impl.NewLedgerService(impl.LedgerServiceParams{
		UserRepo:  userRepo,
		LogRepo:   logRepo,
		Estimator: estimator,
		Config:    cfg,
		Logger:    logger,
	})
	require.NoError(t, err)

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(users, logger),
		MealHandler:     handler.NewMealHandler(ledger, logger),
		ProgressHandler: handler.NewProgressHandler(ledger, logger),
		ProfileHandler:  handler.NewProfileHandler(users, logger),
		AdminHandler:    handler.NewAdminHandler(users, logger),
		HealthHandler:   handler.NewHealthHandler(storeStatus{configured: true}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens, users, logger),
	})

	return &testServer{echo: e, estimator: estimator}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// login registers username, approves it through the admin account when
// needed and returns an access token.
func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/auth/register", "", map[string]any{"username": username, "password": "secret"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered struct {
		Data struct {
			ID       string `json:"id"`
			Approved bool   `json:"approved"`
		} `json:"data"`
	}
	decode(t, rec, &registered)

	if !registered.Data.Approved {
		rec = s.do(t, http.MethodPost, "/api/v1/admin/users/"+registered.Data.ID+"/approve", s.adminToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	decode(t, rec, &out)

	return out.Data.AccessToken
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": "root", "password": "secret"})
	if rec.Code != http.StatusOK {
		rec = s.do(t, http.MethodPost, "/auth/register", "", map[string]any{"username": "root", "password": "secret"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		rec = s.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": "root", "password": "secret"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	var out struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	decode(t, rec, &out)

	return out.Data.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var out response.ErrorResponse
	decode(t, rec, &out)
	require.NotNil(t, out.Error)

	return *out.Error
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var out struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	decode(t, rec, &out)
	assert.Equal(t, "ok", out.Data.Status)
	assert.Equal(t, "req-123", out.Meta.RequestID)
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/auth/register", "", map[string]any{"username": "alice", "password": "secret", "age": 30})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	rec = srv.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_NOT_APPROVED", decodeError(t, rec).Code)

	rec = srv.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)

	rec = srv.do(t, http.MethodPost, "/auth/register", "", map[string]any{"username": "ALICE", "password": "other"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/auth/register", "", map[string]any{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, "password is required", errInfo.Details)
}

func TestProtectedRoutes(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := srv.login(t, "alice")
	rec = srv.do(t, http.MethodPost, "/api/v1/admin/users/someone/approve", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/admin/users/missing/approve", srv.adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogMealAndProgress(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "alice")

	srv.estimator.EXPECT().Estimate(mock.Anything, mock.Anything).Return(bowlEstimate, nil).Twice()

	for range 2 {
		rec := srv.do(t, http.MethodPost, "/api/v1/meals", token, map[string]any{"description": "chicken rice bowl"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := srv.do(t, http.MethodGet, "/api/v1/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var progress struct {
		Data struct {
			Totals struct {
				Calories float64 `json:"calories"`
			} `json:"totals"`
			Entries []any `json:"entries"`
			Rank    struct {
				Points int `json:"points"`
			} `json:"rank"`
		} `json:"data"`
	}
	decode(t, rec, &progress)
	assert.Equal(t, 600.0, progress.Data.Totals.Calories)
	assert.Len(t, progress.Data.Entries, 2)
	assert.Equal(t, 20, progress.Data.Rank.Points)

	rec = srv.do(t, http.MethodGet, "/api/v1/progress?date=yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/leaderboard?limit=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var board struct {
		Data []struct {
			Username   string `json:"username"`
			RankPoints int    `json:"rank_points"`
		} `json:"data"`
	}
	decode(t, rec, &board)
	require.Len(t, board.Data, 1)
	assert.Equal(t, "alice", board.Data[0].Username)
	assert.Equal(t, 20, board.Data[0].RankPoints)

	rec = srv.do(t, http.MethodGet, "/api/v1/leaderboard?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogMeal_RejectedEstimateShowsRawText(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "alice")

	raw := `{"meal_name":"Toast","calories":120}`
	srv.estimator.EXPECT().Estimate(mock.Anything, mock.Anything).Return(raw, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/meals", token, map[string]any{"description": "toast"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "INCOMPLETE_RESPONSE", errInfo.Code)
	assert.Equal(t, raw, errInfo.Details)

	rec = srv.do(t, http.MethodGet, "/api/v1/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"entries":[]`)
}

func TestLogMeal_MultipartPhoto(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "alice")

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	srv.estimator.EXPECT().
		Estimate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *service.EstimateRequest) {
			assert.Equal(t, "image/png", req.ImageType)
			assert.Equal(t, png, req.Image)
			assert.Equal(t, "lunch", req.Description)
		}).
		Return(bowlEstimate, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("description", "lunch"))
	part, err := writer.CreateFormFile("photo", "meal.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meals", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestLogMeal_RejectsNonImage(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "alice")

	rec := srv.do(t, http.MethodPost, "/api/v1/meals", token, map[string]any{
		"description": "lunch",
		"image":       []byte("just some text, not a photo"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTargets(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "alice")

	rec := srv.do(t, http.MethodPatch, "/api/v1/targets", token, map[string]any{"goals": map[string]float64{"protein": 180}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Data struct {
			Targets struct {
				Protein float64 `json:"protein"`
			} `json:"targets"`
		} `json:"data"`
	}
	decode(t, rec, &profile)
	assert.Equal(t, 180.0, profile.Data.Targets.Protein)

	rec = srv.do(t, http.MethodPatch, "/api/v1/targets", token, map[string]any{"goals": map[string]float64{"caffeine": 1}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPatch, "/api/v1/targets", token, map[string]any{"goals": map[string]float64{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
