package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/usecase"
)

type notificationUsecaser interface {
	List(page, pageSize int) ([]domain.Notification, domain.PageMeta)
}

type NotificationHandler struct {
	notificationUsecase notificationUsecaser
	logger              *slog.Logger
}

func NewNotificationHandler(notificationUsecase notificationUsecaser, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		logger:              logger.With("component", "notification_handler"),
	}
}

type notificationQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// GET /api/v2/mobile/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	query := notificationQuery{Page: 1, PageSize: usecase.DefaultNotificationPageSize}
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	items, meta := h.notificationUsecase.List(query.Page, query.PageSize)
	c.JSON(http.StatusOK, pageResponse[domain.Notification]{Items: items, Meta: meta})
}

// PUT /api/v2/mobile/notifications/:id/read
// Notifications are fabricated per request; marking one read is a no-op.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
