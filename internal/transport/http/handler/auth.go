package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/metrics"
	"github.com/rqapp/rq-mobile-api/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(in usecase.RegisterInput) (domain.User, domain.Tokens, error)
	Login(email, password string) (domain.User, domain.Tokens, error)
	Refresh(refreshToken string) (domain.Tokens, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName"  binding:"required"`
	Email     string  `json:"email"     binding:"required"`
	Password  string  `json:"password"  binding:"required"`
	Phone     *string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type sessionResponse struct {
	User   domain.User   `json:"user"`
	Tokens domain.Tokens `json:"tokens"`
}

// POST /api/v2/mobile/auth/register
// 409 when the email is already registered.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	user, tokens, err := h.authUsecase.Register(usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			fail(c, http.StatusConflict, slugConflict, msgEmailExists)
			return
		}
		h.logger.Error("register", "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}

	metrics.RegistrationsTotal.Inc()
	c.JSON(http.StatusCreated, sessionResponse{User: user, Tokens: tokens})
}

// POST /api/v2/mobile/auth/login
// 401 unless the email is registered and the password is one of the two
// accepted mock passwords.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	user, tokens, err := h.authUsecase.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			fail(c, http.StatusUnauthorized, slugUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error("login", "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, sessionResponse{User: user, Tokens: tokens})
}

// POST /api/v2/mobile/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	tokens, err := h.authUsecase.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Error("refresh", "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// POST /api/v2/mobile/auth/logout
// No server-side session exists, so there is nothing to invalidate.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// POST /api/v2/mobile/auth/verify-device
func (h *AuthHandler) VerifyDevice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
