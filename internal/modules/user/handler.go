package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudoLimin/OurCollege/internal/pkg/response"
	"github.com/sudoLimin/OurCollege/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "MISSING_FIELDS", "Validation failed", errs)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		response.BadRequest(c, "MISSING_FIELDS", "Name, email and password are required")
	case errors.Is(err, ErrPasswordTooShort):
		response.BadRequest(c, "PASSWORD_TOO_SHORT", "Password must be at least 6 characters")
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_ALREADY_EXISTS", "Email is already registered")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
	default:
		response.Success(c, http.StatusOK, u)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "MISSING_CREDENTIALS", "Validation failed", errs)
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		response.BadRequest(c, "MISSING_CREDENTIALS", "Email and password are required")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
	default:
		response.Success(c, http.StatusOK, AuthResponse{User: u, Token: token})
	}
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}
