package captcha

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tresor/config"
	"tresor/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedOutcomes struct {
	mu       sync.Mutex
	outcomes []service.CaptchaOutcome
}

func (r *recordedOutcomes) RecordCaptchaOutcome(outcome service.CaptchaOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordedOutcomes) RecordRegistration(string) {}

func (r *recordedOutcomes) last() service.CaptchaOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.outcomes) == 0 {
		return ""
	}

	return r.outcomes[len(r.outcomes)-1]
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestVerifier(t *testing.T, handler http.HandlerFunc) (service.CaptchaVerifier, *recordedOutcomes) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rec := &recordedOutcomes{}

	return NewRecaptchaVerifier(server.URL, "server-secret", 2*time.Second, rec, newDiscardLogger()), rec
}

func TestRecaptchaVerifier_Success(t *testing.T) {
	var gotSecret, gotResponse, gotMethod, gotContentType string
	verifier, rec := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostForm.Get("secret")
		gotResponse = r.PostForm.Get("response")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success": true, "hostname": "localhost"}`)
	})

	assert.True(t, verifier.Verify(context.Background(), "valid-token"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "server-secret", gotSecret)
	assert.Equal(t, "valid-token", gotResponse)
	assert.Equal(t, service.CaptchaOutcomeSuccess, rec.last())
}

func TestRecaptchaVerifier_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		outcome service.CaptchaOutcome
	}{
		{"success false", http.StatusOK, `{"success": false, "error-codes": ["invalid-input-response"]}`, service.CaptchaOutcomeRejected},
		{"success missing", http.StatusOK, `{"hostname": "localhost"}`, service.CaptchaOutcomeRejected},
		{"success as string", http.StatusOK, `{"success": "true"}`, service.CaptchaOutcomeUnavailable},
		{"malformed body", http.StatusOK, `"success": true`, service.CaptchaOutcomeUnavailable},
		{"empty body", http.StatusOK, ``, service.CaptchaOutcomeUnavailable},
		{"server error", http.StatusInternalServerError, `{"success": true}`, service.CaptchaOutcomeUnavailable},
		{"bad request", http.StatusBadRequest, `{"success": true}`, service.CaptchaOutcomeUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier, rec := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			assert.False(t, verifier.Verify(context.Background(), "some-token"))
			assert.Equal(t, tc.outcome, rec.last())
		})
	}
}

func TestRecaptchaVerifier_EmptyTokenSkipsProvider(t *testing.T) {
	called := false
	verifier, rec := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	assert.False(t, verifier.Verify(context.Background(), "  "))
	assert.False(t, called)
	assert.Equal(t, service.CaptchaOutcomeRejected, rec.last())
}

func TestRecaptchaVerifier_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	rec := &recordedOutcomes{}
	verifier := NewRecaptchaVerifier(url, "secret", time.Second, rec, newDiscardLogger())

	assert.False(t, verifier.Verify(context.Background(), "token"))
	assert.Equal(t, service.CaptchaOutcomeUnavailable, rec.last())
}

func TestRecaptchaVerifier_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = io.WriteString(w, `{"success": true}`)
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	rec := &recordedOutcomes{}
	verifier := NewRecaptchaVerifier(server.URL, "secret", 50*time.Millisecond, rec, newDiscardLogger())

	start := time.Now()
	assert.False(t, verifier.Verify(context.Background(), "token"))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, service.CaptchaOutcomeUnavailable, rec.last())
}

func TestRecaptchaVerifier_CallerCancellationDoesNotAbort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	verifier, _ := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		cancel()
		time.Sleep(20 * time.Millisecond)
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	assert.True(t, verifier.Verify(ctx, "token"))
}

func TestNew_DisabledReturnsPermissiveVerifier(t *testing.T) {
	rec := &recordedOutcomes{}
	verifier := New(Params{
		Config:  &config.Config{Captcha: &config.CaptchaConfig{Disabled: true}},
		Logger:  newDiscardLogger(),
		Metrics: rec,
	})

	assert.True(t, verifier.Verify(context.Background(), "anything"))
	assert.False(t, verifier.Verify(context.Background(), ""))
	assert.Equal(t, service.CaptchaOutcomeRejected, rec.last())
}

func TestNew_MissingCaptchaConfigStaysFailClosed(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *config.CaptchaConfig
	}{
		{"section absent", nil},
		{"section without disabled key", &config.CaptchaConfig{Secret: "secret"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordedOutcomes{}
			verifier := New(Params{
				Config:  &config.Config{Captcha: tc.cfg},
				Logger:  newDiscardLogger(),
				Metrics: rec,
			})

			assert.False(t, verifier.Verify(context.Background(), "anything"))
			assert.Equal(t, service.CaptchaOutcomeUnavailable, rec.last())
		})
	}
}
