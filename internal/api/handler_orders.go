package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/model"
)

// ListOrders handles GET /api/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.repos.Orders.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListAllOrders handles GET /api/orders/all.
func (h *Handler) ListAllOrders(c *gin.Context) {
	orders, err := h.repos.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := h.repos.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// AddOrder handles POST /api/orders.
func (h *Handler) AddOrder(c *gin.Context) {
	var o model.ServiceOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Orders.Add(c.Request.Context(), &o)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateOrder handles PUT /api/orders/:id.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var o model.ServiceOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Orders.Update(c.Request.Context(), id, &o)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteOrder handles DELETE /api/orders/:id. Orders are history and are
// only ever deactivated.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Orders.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReactivateOrder handles POST /api/orders/:id/reactivate.
func (h *Handler) ReactivateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Orders.Reactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
