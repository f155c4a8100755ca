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

type propertyUsecaser interface {
	Search(page, pageSize int, query string) ([]domain.Property, domain.PageMeta)
	Detail(id string) (domain.PropertyDetail, error)
}

type PropertyHandler struct {
	propertyUsecase propertyUsecaser
	logger          *slog.Logger
}

func NewPropertyHandler(propertyUsecase propertyUsecaser, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
		logger:          logger.With("component", "property_handler"),
	}
}

type searchQuery struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
	Query    string `form:"query"`
}

type pageResponse[T any] struct {
	Items []T             `json:"items"`
	Meta  domain.PageMeta `json:"meta"`
}

// GET /api/v2/mobile/properties/search
// Always 200; out-of-range pages come back with empty items.
func (h *PropertyHandler) Search(c *gin.Context) {
	query := searchQuery{Page: 1, PageSize: usecase.DefaultPageSize}
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	items, meta := h.propertyUsecase.Search(query.Page, query.PageSize, query.Query)
	metrics.SearchesTotal.Inc()

	c.JSON(http.StatusOK, pageResponse[domain.Property]{Items: items, Meta: meta})
}

// GET /api/v2/mobile/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.propertyUsecase.Detail(id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			fail(c, http.StatusNotFound, slugNotFound, msgPropertyNotFound)
			return
		}
		h.logger.Error("property detail", "property_id", id, "error", err)
		fail(c, http.StatusInternalServerError, slugInternal, msgInternalServer)
		return
	}

	c.JSON(http.StatusOK, detail)
}
