package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "dogcatify-core/internal/handler/dto/response"
	"dogcatify-core/internal/handler/httperr"
	"dogcatify-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get order
// @Description Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List orders filtered by partner, customer or status
// @Tags orders
// @Produce json
// @Param partner_id query string false "Partner ID"
// @Param customer_id query string false "Customer ID"
// @Param status query string false "Order status"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.OrderListItemResponse
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := parseOrderFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

func parseOrderFilter(c *gin.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	if raw := c.Query("partner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.PartnerID = &id
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return filter, err
		}
		filter.Limit = int32(limit)
	}
	return filter, nil
}
