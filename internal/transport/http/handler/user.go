package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

type userUsecaser interface {
	Profile() (domain.User, error)
	Subscription() domain.Subscription
}

type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger.With("component", "user_handler"),
	}
}

// GET /api/v2/mobile/user/profile
// Returns the fixed seed account; the mock has no auth context to derive a
// caller identity from.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.userUsecase.Profile()
	if err != nil {
		h.logger.Error("profile", "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/v2/mobile/user/subscription
func (h *UserHandler) Subscription(c *gin.Context) {
	c.JSON(http.StatusOK, h.userUsecase.Subscription())
}
