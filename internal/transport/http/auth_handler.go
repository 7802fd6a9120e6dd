package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travia-app/travia-backend/internal/service"
	"github.com/travia-app/travia-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.GET("/me", handler.me, RequireAuth(auth))
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	user, token, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, util.Error("email already registered"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to register"))
		}
	}
	return c.JSON(http.StatusCreated, authResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error("invalid email or password"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to log in"))
	}
	return c.JSON(http.StatusOK, authResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	return c.JSON(http.StatusOK, user)
}
