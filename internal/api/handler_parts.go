package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/model"
)

// ListParts handles GET /api/parts.
func (h *Handler) ListParts(c *gin.Context) {
	parts, err := h.repos.Parts.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// ListAllParts handles GET /api/parts/all.
func (h *Handler) ListAllParts(c *gin.Context) {
	parts, err := h.repos.Parts.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GetPart handles GET /api/parts/:id.
func (h *Handler) GetPart(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.repos.Parts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreatePart handles POST /api/parts.
func (h *Handler) CreatePart(c *gin.Context) {
	var p model.Part
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Parts.Add(c.Request.Context(), &p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdatePart handles PUT /api/parts/:id.
func (h *Handler) UpdatePart(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p model.Part
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	rec, err := h.repos.Parts.Update(c.Request.Context(), id, &p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeletePart handles DELETE /api/parts/:id. Parts have no dependents
// concept, so this always deactivates.
func (h *Handler) DeletePart(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Parts.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReactivatePart handles POST /api/parts/:id/reactivate.
func (h *Handler) ReactivatePart(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.repos.Parts.Reactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
