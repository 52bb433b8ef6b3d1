package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"auth-service/internal/application/command"
	"auth-service/internal/application/common"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/application/services"
	"auth-service/internal/domain/repositories"
	"auth-service/internal/infrastructure"
)

type AuthHandler struct {
	authService interfaces.AuthService
}

func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResponseCore struct {
	UserProfile *common.UserResult `json:"user_profile"`
}

type LoginResponseCore struct {
	UserProfile *common.UserResult        `json:"user_profile"`
	Tokens      *infrastructure.TokenPair `json:"tokens"`
}

// RegisterResponse is the envelope every auth endpoint answers with. Exactly
// one of Response and Error is non-null.
type RegisterResponse struct {
	ResponseMessage string        `json:"response_message"`
	Response        *ResponseCore `json:"response"`
	Error           *string       `json:"error"`
}

type LoginResponse struct {
	ResponseMessage string             `json:"response_message"`
	Response        *LoginResponseCore `json:"response"`
	Error           *string            `json:"error"`
}

func failure(message, detail string) *RegisterResponse {
	return &RegisterResponse{
		ResponseMessage: message,
		Error:           &detail,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request payload", "Invalid request payload"))
	}
	if msg, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, failure("Invalid request payload", msg))
	}

	result, err := h.authService.RegisterUser(c.Request().Context(), &command.RegisterUserCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		status, message := classifyRegistrationError(err)
		return c.JSON(status, failure(message, err.Error()))
	}

	return c.JSON(http.StatusCreated, &RegisterResponse{
		ResponseMessage: fmt.Sprintf("User with email '%s' registered successfully!", req.Email),
		Response:        &ResponseCore{UserProfile: result.Result},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request payload", "Invalid request payload"))
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, failure("Invalid request payload", "email and password are required"))
	}

	result, err := h.authService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		detail := err.Error()
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, &LoginResponse{
				ResponseMessage: "Login failed",
				Error:           &detail,
			})
		}
		return c.JSON(http.StatusInternalServerError, &LoginResponse{
			ResponseMessage: "Login failed",
			Error:           &detail,
		})
	}

	return c.JSON(http.StatusOK, &LoginResponse{
		ResponseMessage: "Logged in successfully",
		Response: &LoginResponseCore{
			UserProfile: result.User,
			Tokens:      result.Tokens,
		},
	})
}

// Health handles GET /auth/health.
func (h *AuthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "auth-service",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (r *RegisterRequest) validate() (string, bool) {
	switch {
	case r.FirstName == "":
		return "first_name is required", false
	case r.LastName == "":
		return "last_name is required", false
	case r.Email == "":
		return "email is required", false
	case r.Password == "":
		return "password is required", false
	}
	return "", true
}

func classifyRegistrationError(err error) (int, string) {
	var tokenErr *services.TokenIssuanceError
	var hashErr *services.HashingError

	switch {
	case errors.As(err, &tokenErr):
		return http.StatusInternalServerError, "Failed to generate tokens"
	case errors.As(err, &hashErr):
		return http.StatusBadRequest, "Failed to hash password"
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return http.StatusForbidden, "Registration failed"
	default:
		return http.StatusInternalServerError, "Failed to register user"
	}
}
