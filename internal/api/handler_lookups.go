package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/repo"
)

// The two lookup tables share one handler shape; only the repository and
// model type differ.

func listLookup[T any](c *gin.Context, r *repo.LookupRepo[T]) {
	recs, err := r.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func listAllLookup[T any](c *gin.Context, r *repo.LookupRepo[T]) {
	recs, err := r.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func addLookup[T any](c *gin.Context, r *repo.LookupRepo[T]) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	out, err := r.Add(c.Request.Context(), &rec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func updateLookup[T any](c *gin.Context, r *repo.LookupRepo[T]) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
		return
	}
	out, err := r.Update(c.Request.Context(), id, &rec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func deleteLookup[T any](c *gin.Context, r *repo.LookupRepo[T]) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := r.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListServiceTypes(c *gin.Context)    { listLookup(c, h.repos.ServiceTypes) }
func (h *Handler) ListAllServiceTypes(c *gin.Context) { listAllLookup(c, h.repos.ServiceTypes) }
func (h *Handler) AddServiceType(c *gin.Context)    { addLookup(c, h.repos.ServiceTypes) }
func (h *Handler) UpdateServiceType(c *gin.Context) { updateLookup(c, h.repos.ServiceTypes) }
func (h *Handler) DeleteServiceType(c *gin.Context) { deleteLookup(c, h.repos.ServiceTypes) }

func (h *Handler) ListPaymentMethods(c *gin.Context)    { listLookup(c, h.repos.PaymentMethods) }
func (h *Handler) ListAllPaymentMethods(c *gin.Context) { listAllLookup(c, h.repos.PaymentMethods) }
func (h *Handler) AddPaymentMethod(c *gin.Context)    { addLookup(c, h.repos.PaymentMethods) }
func (h *Handler) UpdatePaymentMethod(c *gin.Context) { updateLookup(c, h.repos.PaymentMethods) }
func (h *Handler) DeletePaymentMethod(c *gin.Context) { deleteLookup(c, h.repos.PaymentMethods) }
