package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkamau/warehouse-api/internal/domain/order"
)

type OrdersStore interface {
	List(ctx context.Context, f order.Filter) ([]order.Order, error)
}

type OrdersHandler struct {
	repo OrdersStore
}

func NewOrdersHandler(repo OrdersStore) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

func (h *OrdersHandler) ListOrders(ctx *gin.Context) {
	orders, err := h.repo.List(ctx.Request.Context(), order.Filter{})

	if err != nil {
		RespondInternal(ctx, "Could not list orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) SearchOrders(ctx *gin.Context) {
	var f order.Filter

	if v, ok := ctx.GetQuery("user_id"); ok && v != "" {
		f.UserID = &v
	}

	orders, err := h.repo.List(ctx.Request.Context(), f)

	if err != nil {
		RespondInternal(ctx, "Could not search orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
