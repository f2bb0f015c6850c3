package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/repo"
)

// ListActiveEquipments handles GET /api/equipments.
func (h *Handler) ListActiveEquipments(c *gin.Context) {
	recs, err := h.repos.Equipments.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// ListAllEquipments handles GET /api/equipments/all.
func (h *Handler) ListAllEquipments(c *gin.Context) {
	recs, err := h.repos.Equipments.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetEquipment handles GET /api/equipments/:id.
func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.repos.Equipments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AddEquipment handles POST /api/equipments. A duplicate serial number
// comes back as the specific already-registered message.
func (h *Handler) AddEquipment(c *gin.Context) {
	var p repo.EquipmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Equipments.Add(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateEquipment handles PUT /api/equipments/:id.
func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p repo.EquipmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Equipments.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteEquipment handles DELETE /api/equipments/:id with the same
// hard/soft outcome shape as clients.
func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	out, err := h.repos.Equipments.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ReactivateEquipment handles POST /api/equipments/:id/reactivate.
func (h *Handler) ReactivateEquipment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Equipments.Reactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
