package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/repo"
)

// ListClients handles GET /api/clients (active only, the day-to-day
// picker view).
func (h *Handler) ListClients(c *gin.Context) {
	recs, err := h.repos.Clients.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// ListAllClients handles GET /api/clients/all (management view, inactive
// records included).
func (h *Handler) ListAllClients(c *gin.Context) {
	recs, err := h.repos.Clients.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetClient handles GET /api/clients/:id.
func (h *Handler) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.repos.Clients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AddClient handles POST /api/clients.
func (h *Handler) AddClient(c *gin.Context) {
	var p repo.ClientPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Clients.Add(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateClient handles PUT /api/clients/:id.
func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p repo.ClientPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Clients.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteClient handles DELETE /api/clients/:id and returns the lifecycle
// outcome: hard when no service order references the client, soft
// otherwise.
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	out, err := h.repos.Clients.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ReactivateClient handles POST /api/clients/:id/reactivate.
func (h *Handler) ReactivateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Clients.Reactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
