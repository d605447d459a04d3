// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"authsvc/config"
	"authsvc/internal/delivery/http/response"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	registrationSuccessMessage = "Registration Successful!"
	loginSuccessMessage        = "Login Successful!"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type namedRegisterRequest struct {
	Name string `json:"name" validate:"required"`
	registerRequest
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	payments bool
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{
		uc:       uc,
		payments: cfg.API.PaymentsEnabled(),
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input, err := h.bindRegister(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.MessageResponse{
		Success: h.payments,
		Message: registrationSuccessMessage,
	})
}

// bindRegister reads the registration body; a display name is required only
// when the payments surface is enabled.
func (h *UserHandler) bindRegister(c echo.Context) (*usecase.RegisterInput, error) {
	if h.payments {
		var req namedRegisterRequest
		if err := bindAndValidate(c, &req); err != nil {
			return nil, err
		}

		return &usecase.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password}, nil
	}

	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return &usecase.RegisterInput{Email: req.Email, Password: req.Password}, nil
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if h.payments {
		return response.JSON(c, http.StatusOK, response.NamedLoginResponse{
			Success: true,
			Token:   output.Token,
			Name:    output.User.Name,
		})
	}

	return response.JSON(c, http.StatusOK, response.LoginResponse{
		Message: loginSuccessMessage,
		Token:   output.Token,
	})
}

// bindAndValidate treats an unreadable body the same as one with missing fields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return c.Validate(req)
}
