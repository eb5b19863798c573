package captcha

import (
	"context"
	"strings"

	"tresor/internal/domain/service"
)

// permissiveVerifier accepts any non-empty token without calling out.
type permissiveVerifier struct {
	metrics service.MetricsRecorder
}

// NewPermissiveVerifier is used when CAPTCHA checking is disabled.
func NewPermissiveVerifier(metrics service.MetricsRecorder) service.CaptchaVerifier {
	return &permissiveVerifier{metrics: metrics}
}

func (v *permissiveVerifier) Verify(_ context.Context, token string) bool {
	if strings.TrimSpace(token) == "" {
		v.metrics.RecordCaptchaOutcome(service.CaptchaOutcomeRejected)

		return false
	}

	v.metrics.RecordCaptchaOutcome(service.CaptchaOutcomeSuccess)

	return true
}
