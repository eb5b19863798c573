package service

import "context"

// CaptchaOutcome classifies a single verification attempt.
type CaptchaOutcome string

const (
	CaptchaOutcomeSuccess CaptchaOutcome = "success"
	// CaptchaOutcomeRejected means the provider answered and refused the token.
	CaptchaOutcomeRejected CaptchaOutcome = "rejected"
	// CaptchaOutcomeUnavailable covers network errors, timeouts, non-2xx
	// answers and bodies that could not be parsed.
	CaptchaOutcomeUnavailable CaptchaOutcome = "unavailable"
)

// CaptchaVerifier checks a client-supplied CAPTCHA response token.
//
// Verify is fail-closed: it returns true only when the provider confirmed the
// token. Every failure, including the provider being unreachable, is false.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}
