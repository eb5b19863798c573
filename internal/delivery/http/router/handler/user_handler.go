// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tresor/internal/delivery/http/response"
	"tresor/internal/domain/entity"
	domainerrors "tresor/internal/domain/errors"
	"tresor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	answerUserSaved   = "User Saved"
	answerUserDeleted = "User successfully deleted!"
)

// UserResponse is the public shape of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	registration usecase.RegistrationUsecase
	users        usecase.UserUsecase
	logger       *slog.Logger
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Registration usecase.RegistrationUsecase
	Users        usecase.UserUsecase
	Logger       *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		registration: params.Registration,
		users:        params.Users,
		logger:       params.Logger,
	}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("failed to bind registration input")
	}

	if _, err := h.registration.RegisterUser(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Answer(c, http.StatusAccepted, answerUserSaved)
}

// GetUserByID handles GET /api/users/:id.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return domainerrors.ErrInvalidUserID.WrapMessage("failed to parse user id")
	}

	user, err := h.users.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// GetAllUsers handles GET /api/users.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.users.GetAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return c.JSON(http.StatusOK, out)
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return domainerrors.ErrInvalidUserID.WrapMessage("failed to parse user id")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("failed to bind user input")
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return domainerrors.ErrInvalidUserID.WrapMessage("failed to parse user id")
	}

	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Answer(c, http.StatusOK, answerUserDeleted)
}

// GetUserIDByEmail handles POST /api/users/byemail.
func (h *UserHandler) GetUserIDByEmail(c echo.Context) error {
	var input usecase.EmailInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("failed to bind email input")
	}

	id, err := h.users.FindUserIDByEmail(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Answer(c, http.StatusAccepted, id)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("failed to bind login input")
	}

	id, err := h.users.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Answer(c, http.StatusAccepted, id)
}

func parseUserID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
