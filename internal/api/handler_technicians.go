package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/repo"
)

// ListTechnicians handles GET /api/technicians.
func (h *Handler) ListTechnicians(c *gin.Context) {
	techs, err := h.repos.Technicians.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

// ListAllTechnicians handles GET /api/technicians/all.
func (h *Handler) ListAllTechnicians(c *gin.Context) {
	techs, err := h.repos.Technicians.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

// GetTechnician handles GET /api/technicians/:id.
func (h *Handler) GetTechnician(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.repos.Technicians.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateTechnician handles POST /api/technicians.
func (h *Handler) CreateTechnician(c *gin.Context) {
	var p repo.TechnicianPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Technicians.Add(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateTechnician handles PUT /api/technicians/:id.
func (h *Handler) UpdateTechnician(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p repo.TechnicianPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Technicians.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteTechnician handles DELETE /api/technicians/:id. Always a soft
// deactivation, and the shop must keep at least one active technician.
func (h *Handler) DeleteTechnician(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	t, err := h.repos.Technicians.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if t.IsActive {
		n, err := h.store.CountActiveTechnicians(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if n <= 1 {
			c.AbortWithStatusJSON(http.StatusConflict,
				gin.H{"error": "at least one active technician is required"})
			return
		}
	}

	res, err := h.repos.Technicians.Delete(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReactivateTechnician handles POST /api/technicians/:id/reactivate.
func (h *Handler) ReactivateTechnician(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Technicians.Reactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
