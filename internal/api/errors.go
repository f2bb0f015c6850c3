package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairshop-backend/internal/store"
)

// User-facing messages. This layer is the only one allowed to downgrade
// an error; raw internal errors never cross to the caller.
const (
	msgDuplicate = "this identifier is already registered"
	msgNotFound  = "record not found"
	msgInvalid   = "required fields are missing or invalid"
	msgGeneric   = "operation failed, please try again"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": msgDuplicate})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": msgNotFound})
	case errors.Is(err, store.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgInvalid})
	default:
		// The specific failure stays in the log for diagnostics.
		log.Printf("internal error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgGeneric})
	}
}

// idParam parses the :id path segment. A second return of false means a
// 400 was already written.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
