// Package captcha verifies client CAPTCHA tokens against Google reCAPTCHA.
package captcha

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tresor/config"
	"tresor/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxResponseBytes caps how much of the provider's answer is read.
const maxResponseBytes = 64 << 10

// siteVerifyResponse is the subset of the siteverify answer we rely on.
type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Params holds dependencies for the verifier, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

type recaptchaVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// New returns the reCAPTCHA verifier, or a permissive one when CAPTCHA
// checking is disabled in configuration.
func New(params Params) service.CaptchaVerifier {
	cfg := params.Config.Captcha
	if cfg == nil {
		cfg = &config.CaptchaConfig{}
	}
	if cfg.Disabled {
		params.Logger.Warn("CAPTCHA verification is disabled, every non-empty token is accepted")

		return NewPermissiveVerifier(params.Metrics)
	}

	return NewRecaptchaVerifier(cfg.VerifyURL, cfg.Secret, cfg.Timeout, params.Metrics, params.Logger)
}

// NewRecaptchaVerifier builds a verifier posting to verifyURL. The timeout
// bounds the whole exchange with the provider.
func NewRecaptchaVerifier(verifyURL, secret string, timeout time.Duration, metrics service.MetricsRecorder, logger *slog.Logger) service.CaptchaVerifier {
	return &recaptchaVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Verify returns true only when the provider confirmed the token.
func (v *recaptchaVerifier) Verify(ctx context.Context, token string) bool {
	outcome, err := v.verify(ctx, token)
	v.metrics.RecordCaptchaOutcome(outcome)

	switch outcome {
	case service.CaptchaOutcomeSuccess:
		v.logger.DebugContext(ctx, "CAPTCHA verified")
	case service.CaptchaOutcomeRejected:
		v.logger.InfoContext(ctx, "CAPTCHA rejected", slog.Any("reason", err))
	default:
		v.logger.WarnContext(ctx, "CAPTCHA provider unavailable", slog.Any("error", err))
	}

	return outcome == service.CaptchaOutcomeSuccess
}

func (v *recaptchaVerifier) verify(ctx context.Context, token string) (service.CaptchaOutcome, error) {
	if strings.TrimSpace(token) == "" {
		return service.CaptchaOutcomeRejected, errors.New("empty captcha token")
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	// A client abandoning its request does not abort the verification; the
	// client timeout still bounds it.
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return service.CaptchaOutcomeUnavailable, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return service.CaptchaOutcomeUnavailable, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return service.CaptchaOutcomeUnavailable, errors.Wrap(err, "read siteverify response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return service.CaptchaOutcomeUnavailable, errors.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var parsed siteVerifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return service.CaptchaOutcomeUnavailable, errors.Wrap(err, "decode siteverify response")
	}

	if !parsed.Success {
		return service.CaptchaOutcomeRejected, errors.Errorf("siteverify refused token: %v", parsed.ErrorCodes)
	}

	return service.CaptchaOutcomeSuccess, nil
}
