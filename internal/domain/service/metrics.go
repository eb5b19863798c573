package service

// Registration results recorded by the registration flow.
const (
	RegistrationCreated         = "created"
	RegistrationCaptchaRejected = "captcha_rejected"
	RegistrationInvalid         = "invalid"
	RegistrationWeakPassword    = "weak_password"
	RegistrationDuplicate       = "duplicate"
	RegistrationFailed          = "failed"
)

// MetricsRecorder receives counters from the registration flow.
type MetricsRecorder interface {
	RecordCaptchaOutcome(outcome CaptchaOutcome)
	RecordRegistration(result string)
}
