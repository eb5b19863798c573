package impl

import (
	"context"
	"testing"

	"tresor/internal/domain/entity"
	domainerrors "tresor/internal/domain/errors"
	"tresor/internal/domain/repository"
	mockRepo "tresor/internal/mocks/repository"
	mockSvc "tresor/internal/mocks/service"
	"tresor/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T, verifyPasswordOnLogin bool) userServiceFixtures {
	fx := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Config:    newTestConfig(verifyPasswordOnLogin),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           7,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$stored",
	}
}

func TestUserService_GetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, uint64(7)).Return(storedUser(), nil)

		user, err := fx.service.GetUserByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, uint64(8)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUserByID(ctx, 8)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("database failure stays opaque", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, uint64(9)).
			Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to find user by id"))

		_, err := fx.service.GetUserByID(ctx, 9)

		assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
		assert.True(t, errors.Is(err, assert.AnError))
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	fx := createTestUserService(t, false)
	ctx := context.Background()
	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{storedUser()}, nil)

	users, err := fx.service.GetAllUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_FindUserIDByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser(), nil)

		id, err := fx.service.FindUserIDByEmail(ctx, &usecase.EmailInput{Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
	})

	t.Run("missing email is not a crash", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

		id, err := fx.service.FindUserIDByEmail(ctx, &usecase.EmailInput{Email: "missing@example.com"})

		assert.Zero(t, id)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailNotFound))
	})

	t.Run("empty email", func(t *testing.T) {
		fx := createTestUserService(t, false)

		_, err := fx.service.FindUserIDByEmail(context.Background(), &usecase.EmailInput{})

		var vErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"email: E-Mail is required."}, vErr.Fields())
	})
}

func TestUserService_Login(t *testing.T) {
	t.Run("resolves email without checking password", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser(), nil)

		id, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "anything"})

		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
		fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrEmailNotFound))
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t, false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{})

		var vErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, []string{"email: E-Mail is required.", "password: Password is required."}, vErr.Fields())
	})

	t.Run("password verification enabled", func(t *testing.T) {
		fx := createTestUserService(t, true)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser(), nil).Times(2)
		fx.hasher.EXPECT().Check("Correct1!", "$2a$10$stored").Return(true).Once()
		fx.hasher.EXPECT().Check("Wrong1!", "$2a$10$stored").Return(false).Once()

		id, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "Correct1!"})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)

		_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "Wrong1!"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

// runInTx makes the mocked transaction manager call fn with a factory over userRepo.
func runInTx(t *testing.T, fx userServiceFixtures, txRepo *mockRepo.MockUserRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txRepo)

			return fn(factory)
		})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("keeps password hash", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		txRepo := mockRepo.NewMockUserRepository(t)
		runInTx(t, fx, txRepo)

		txRepo.EXPECT().FindByID(ctx, uint64(7)).Return(storedUser(), nil)
		txRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				assert.Equal(t, "Grace", user.FirstName)
				assert.Equal(t, "$2a$10$stored", user.PasswordHash)
			}).
			Return(nil)

		user, err := fx.service.UpdateUser(ctx, 7, &usecase.UpdateUserInput{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "grace@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		txRepo := mockRepo.NewMockUserRepository(t)
		runInTx(t, fx, txRepo)
		txRepo.EXPECT().FindByID(ctx, uint64(8)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, 8, &usecase.UpdateUserInput{FirstName: "A", LastName: "B", Email: "a@b.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestUserService(t, false)
		ctx := context.Background()
		txRepo := mockRepo.NewMockUserRepository(t)
		runInTx(t, fx, txRepo)
		txRepo.EXPECT().FindByID(ctx, uint64(7)).Return(storedUser(), nil)
		txRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

		_, err := fx.service.UpdateUser(ctx, 7, &usecase.UpdateUserInput{FirstName: "A", LastName: "B", Email: "taken@example.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("invalid input skips transaction", func(t *testing.T) {
		fx := createTestUserService(t, false)

		_, err := fx.service.UpdateUser(context.Background(), 7, &usecase.UpdateUserInput{Email: "bad"})

		var vErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields(), 3)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t, false)
	ctx := context.Background()
	fx.userRepo.EXPECT().Delete(ctx, uint64(7)).Return(nil).Once()
	fx.userRepo.EXPECT().Delete(ctx, uint64(8)).Return(repository.ErrUserNotFound).Once()

	require.NoError(t, fx.service.DeleteUser(ctx, 7))
	assert.True(t, errors.Is(fx.service.DeleteUser(ctx, 8), domainerrors.ErrUserNotFound))
}
