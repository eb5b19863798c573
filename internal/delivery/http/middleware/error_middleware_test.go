package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tresor/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(buf, nil))).HandleHTTPError
	e.GET("/", func(echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	return rec, buf.String()
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		status    int
		body      string
		logged    bool
		notInBody string
	}{
		{
			name:   "validation list",
			err:    errors.WithStack(domainerrors.NewValidationError([]string{"email: E-Mail is required."})),
			status: http.StatusBadRequest,
			body:   `{"message":["email: E-Mail is required."],"code":"VALIDATION_FAILED"}`,
		},
		{
			name:   "wrapped app error",
			err:    errors.Wrap(domainerrors.ErrUserNotFound.WrapMessage("lookup"), "handler"),
			status: http.StatusNotFound,
			body:   `{"message":"User not found","code":"USER_NOT_FOUND"}`,
		},
		{
			name:      "5xx app error hides details",
			err:       domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to create user"),
			status:    http.StatusInternalServerError,
			body:      `{"message":"Internal server error, please try again later","code":"INTERNAL_ERROR"}`,
			logged:    true,
			notInBody: "connection refused",
		},
		{
			name:   "echo http error",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			status: http.StatusMethodNotAllowed,
			body:   `{"message":"Method Not Allowed","code":"HTTP_ERROR"}`,
		},
		{
			name:      "unknown error",
			err:       errors.New("secret internals"),
			status:    http.StatusInternalServerError,
			body:      `{"message":"Internal server error, please try again later","code":"INTERNAL_ERROR"}`,
			logged:    true,
			notInBody: "secret internals",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, logs := serveError(t, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			if tc.logged {
				assert.Contains(t, logs, "level=ERROR")
			} else {
				assert.Empty(t, logs)
			}
			if tc.notInBody != "" {
				assert.NotContains(t, rec.Body.String(), tc.notInBody)
			}
		})
	}
}
