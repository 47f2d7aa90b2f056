package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"autolot/internal/delivery/http/response"
	"autolot/internal/serializer"
	"autolot/internal/usecase"
)

// UserHandler holds dependencies for user and authentication handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phone_number"`
	TwilioOptIn bool   `json:"twilio_opt_in"`
	IsBuyer     bool   `json:"is_buyer"`
	StoreID     *int64 `json:"store_id"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3"`
	PhoneNumber string `json:"phone_number"`
	TwilioOptIn bool   `json:"twilio_opt_in"`
	IsBuyer     bool   `json:"is_buyer"`
	StoreID     *int64 `json:"store_id"`
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		TwilioOptIn: req.TwilioOptIn,
		IsBuyer:     req.IsBuyer,
		StoreID:     req.StoreID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.User(user, serializer.Options{}), "User registered")
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  out.AccessToken,
		"refresh_token": out.RefreshToken,
		"user":          serializer.User(out.User, serializer.Options{}),
	}, "Login successful")
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	opts, err := parseSerializeOptions(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.User(user, opts), "")
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Username:    req.Username,
		PhoneNumber: req.PhoneNumber,
		TwilioOptIn: req.TwilioOptIn,
		IsBuyer:     req.IsBuyer,
		StoreID:     req.StoreID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.User(user, serializer.Options{}), "User updated")
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	input, opts, err := parseListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	users, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.Users(users, opts), "")
}

// SetFlag builds a handler that sets one account status flag, serving the
// activate/deactivate/confirm/block routes.
func (h *UserHandler) SetFlag(flag usecase.UserFlag, value bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return errors.WithStack(err)
		}

		user, err := h.uc.SetUserFlag(c.Request().Context(), id, flag, value)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, serializer.User(user, serializer.Options{}), "User flag updated")
	}
}
