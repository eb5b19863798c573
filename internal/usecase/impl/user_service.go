// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"tresor/config"
	deliverycontext "tresor/internal/delivery/context"
	"tresor/internal/domain/entity"
	domainerrors "tresor/internal/domain/errors"
	"tresor/internal/domain/repository"
	"tresor/internal/domain/service"
	"tresor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager             repository.TransactionManager
	userRepo              repository.UserRepository
	hasher                service.PasswordHasher
	verifyPasswordOnLogin bool
	logger                *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	verifyPassword := false
	if params.Config != nil && params.Config.Auth != nil {
		verifyPassword = params.Config.Auth.VerifyPasswordOnLogin
	}

	return &userService{
		txManager:             params.TxManager,
		userRepo:              params.UserRepo,
		hasher:                params.Hasher,
		verifyPasswordOnLogin: verifyPassword,
		logger:                params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUserByID(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err, domainerrors.ErrUserNotFound, "failed to get user by id")
	}

	return user, nil
}

func (srv *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser loads and saves the user in one transaction. The stored
// password hash is carried over unchanged.
func (srv *userService) UpdateUser(ctx context.Context, id uint64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrs.Messages())
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Email = input.Email

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}
		srv.log(ctx).Warn("Failed to update user", slog.Uint64("userID", id), slog.Any("error", err))

		return nil, mapUserLookupError(err, domainerrors.ErrUserNotFound, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Uint64("userID", id))

	return updated, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uint64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapUserLookupError(err, domainerrors.ErrUserNotFound, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("userID", id))

	return nil
}

func (srv *userService) FindUserIDByEmail(ctx context.Context, input *usecase.EmailInput) (uint64, error) {
	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		return 0, domainerrors.NewValidationError(fieldErrs.Messages())
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return 0, mapUserLookupError(err, domainerrors.ErrEmailNotFound, "failed to find user by email")
	}

	return user.ID, nil
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (uint64, error) {
	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		return 0, domainerrors.NewValidationError(fieldErrs.Messages())
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login for unknown email", slog.String("email", input.Email))
		}

		return 0, mapUserLookupError(err, domainerrors.ErrEmailNotFound, "failed to find user for login")
	}

	if srv.verifyPasswordOnLogin && !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Uint64("userID", user.ID))

		return 0, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during login")
	}

	srv.log(ctx).Debug("Login resolved", slog.Uint64("userID", user.ID))

	return user.ID, nil
}

// mapUserLookupError turns a repository miss into notFound and wraps
// anything else with message.
func mapUserLookupError(err error, notFound *domainerrors.BaseError, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return notFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
