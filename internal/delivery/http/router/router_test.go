package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"tresor/config"
	httpmiddleware "tresor/internal/delivery/http/middleware"
	"tresor/internal/delivery/http/router/handler"
	"tresor/internal/infra/auth"
	"tresor/internal/infra/metrics"
	"tresor/internal/infra/persistence/model"
	"tresor/internal/infra/persistence/postgres"
	"tresor/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubCaptcha accepts exactly one token.
type stubCaptcha struct {
	valid string
}

func (s stubCaptcha) Verify(_ context.Context, token string) bool {
	return token == s.valid
}

type testApp struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	reg := metrics.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	userRepo := postgres.NewUserRepository(db)
	hasher := auth.NewBcryptHasher(cfg)

	registration := impl.NewRegistrationService(impl.RegistrationServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Captcha:  stubCaptcha{valid: "valid-token"},
		Metrics:  recorder,
		Logger:   logger,
	})
	users := impl.NewUserService(impl.UserServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		UserRepo:  userRepo,
		Hasher:    hasher,
		Config:    cfg,
		Logger:    logger,
	})

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			Registration: registration,
			Users:        users,
			Logger:       logger,
		}),
		Registry: reg,
	}).RegisterRoutes(e)

	return &testApp{echo: e, db: db}
}

func (app *testApp) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	var payload map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}

	return rec.Code, payload
}

const validRegistration = `{"firstName":"A","lastName":"B","email":"a@b.com","password":"Abcdef1!","captchaResponse":"valid-token"}`

func TestRegistration_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodPost, "/api/users", validRegistration)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "User Saved", body["answer"])

	var stored model.UserModel
	require.NoError(t, app.db.Where("email = ?", "a@b.com").First(&stored).Error)
	assert.NotZero(t, stored.ID)
	assert.NotEqual(t, "Abcdef1!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Abcdef1!")))

	status, body = app.do(t, http.MethodPost, "/api/users/byemail", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusAccepted, status)
	assert.InDelta(t, float64(stored.ID), body["answer"], 0)

	status, body = app.do(t, http.MethodPost, "/api/users/login", `{"email":"a@b.com","password":"not-checked"}`)
	assert.Equal(t, http.StatusAccepted, status)
	assert.InDelta(t, float64(stored.ID), body["answer"], 0)

	status, _ = app.do(t, http.MethodPost, "/api/users", validRegistration)
	assert.Equal(t, http.StatusConflict, status)
}

func TestRegistration_RejectionsWriteNothing(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "captcha",
			body:   `{"firstName":"A","lastName":"B","email":"a@b.com","password":"Abcdef1!","captchaResponse":"wrong"}`,
			status: http.StatusForbidden,
		},
		{
			name:   "validation",
			body:   `{"firstName":"","lastName":"B","email":"a@b.com","password":"Abcdef1!","captchaResponse":"valid-token"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "password longer than bcrypt accepts",
			body:   `{"firstName":"A","lastName":"B","email":"a@b.com","password":"Abcdef1!` + strings.Repeat("x", 70) + `","captchaResponse":"valid-token"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "weak password",
			body:   `{"firstName":"A","lastName":"B","email":"a@b.com","password":"abc","captchaResponse":"valid-token"}`,
			status: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)

			status, body := app.do(t, http.MethodPost, "/api/users", tc.body)
			assert.Equal(t, tc.status, status)
			assert.NotNil(t, body["message"])

			var count int64
			require.NoError(t, app.db.Model(&model.UserModel{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestRegistration_PasswordOverBcryptLimitIsFieldError(t *testing.T) {
	app := newTestApp(t)

	password := "Abcdef1!" + strings.Repeat("x", 70)
	status, body := app.do(t, http.MethodPost, "/api/users",
		`{"firstName":"A","lastName":"B","email":"a@b.com","password":"`+password+`","captchaResponse":"valid-token"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []any{"password: Password must be at most 72 bytes."}, body["message"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestUserManagement_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.do(t, http.MethodPost, "/api/users", validRegistration)
	require.Equal(t, http.StatusAccepted, status)

	var stored model.UserModel
	require.NoError(t, app.db.First(&stored).Error)
	path := "/api/users/" + strconv.FormatUint(stored.ID, 10)

	status, body := app.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotContains(t, body, "passwordHash")

	status, body = app.do(t, http.MethodPut, path, `{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Grace", body["firstName"])

	var updated model.UserModel
	require.NoError(t, app.db.First(&updated, stored.ID).Error)
	assert.Equal(t, stored.PasswordHash, updated.PasswordHash)

	status, body = app.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User successfully deleted!", body["answer"])

	status, _ = app.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = app.do(t, http.MethodPost, "/api/users/byemail", `{"email":"missing@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No user found with this email", body["message"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/api/users", validRegistration)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tresor_registrations_total{result="created"} 1`)
}
