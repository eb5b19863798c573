package impl

import (
	"context"
	"log/slog"

	deliverycontext "tresor/internal/delivery/context"
	"tresor/internal/domain/entity"
	domainerrors "tresor/internal/domain/errors"
	"tresor/internal/domain/policy"
	"tresor/internal/domain/repository"
	"tresor/internal/domain/service"
	"tresor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type registrationService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	captcha  service.CaptchaVerifier
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// RegistrationServiceParams holds dependencies for the registration flow, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Captcha  service.CaptchaVerifier
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		captcha:  params.Captcha,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser stops at the first failing step; nothing is written unless
// every check passed.
func (srv *registrationService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if !srv.captcha.Verify(ctx, input.CaptchaResponse) {
		srv.metrics.RecordRegistration(service.RegistrationCaptchaRejected)

		return nil, domainerrors.ErrCaptchaRejected.WrapMessage("captcha verification failed")
	}

	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		srv.log(ctx).Info("Registration input rejected", slog.Any("fields", fieldErrs.Messages()))
		srv.metrics.RecordRegistration(service.RegistrationInvalid)

		return nil, domainerrors.NewValidationError(fieldErrs.Messages())
	}

	if !policy.IsStrongPassword(input.Password) {
		srv.log(ctx).Info("Registration password too weak", slog.String("email", input.Email))
		srv.metrics.RecordRegistration(service.RegistrationWeakPassword)

		return nil, domainerrors.ErrWeakPassword.WithDetails(policy.PasswordRequirements)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))
		srv.metrics.RecordRegistration(service.RegistrationFailed)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration email already taken", slog.String("email", input.Email))
			srv.metrics.RecordRegistration(service.RegistrationDuplicate)

			return nil, err
		}

		srv.log(ctx).Error("Failed to store new user", slog.String("email", input.Email), slog.Any("error", err))
		srv.metrics.RecordRegistration(service.RegistrationFailed)

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.metrics.RecordRegistration(service.RegistrationCreated)
	srv.log(ctx).Info("User registered", slog.Uint64("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}
