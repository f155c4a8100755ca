package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

type savedUsecaser interface {
	List() []domain.SavedProperty
	Save(propertyID string, alertsEnabled bool) (domain.SavedProperty, error)
}

type SavedHandler struct {
	savedUsecase savedUsecaser
	logger       *slog.Logger
}

func NewSavedHandler(savedUsecase savedUsecaser, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{
		savedUsecase: savedUsecase,
		logger:       logger.With("component", "saved_handler"),
	}
}

type savePropertyRequest struct {
	PropertyID    string `json:"propertyId" binding:"required"`
	AlertsEnabled *bool  `json:"alertsEnabled"`
}

// GET /api/v2/mobile/properties/saved
func (h *SavedHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.savedUsecase.List()})
}

// POST /api/v2/mobile/properties/saved
// alertsEnabled defaults to true when omitted.
func (h *SavedHandler) Save(c *gin.Context) {
	var req savePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	alertsEnabled := true
	if req.AlertsEnabled != nil {
		alertsEnabled = *req.AlertsEnabled
	}

	saved, err := h.savedUsecase.Save(req.PropertyID, alertsEnabled)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			fail(c, http.StatusNotFound, slugNotFound, msgPropertyNotFound)
			return
		}
		h.logger.Error("save property", "property_id", req.PropertyID, "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DELETE /api/v2/mobile/properties/saved/:id
// Nothing is persisted, so there is nothing to delete.
func (h *SavedHandler) Delete(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
