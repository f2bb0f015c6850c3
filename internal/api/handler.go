package api

import (
	"repairshop-backend/internal/repo"
	"repairshop-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	repos *repo.Repos
	store store.Store
}

// NewHandler creates a new API handler. The store is taken alongside the
// repositories for the orchestration queries (active-technician count).
func NewHandler(repos *repo.Repos, st store.Store) *Handler {
	return &Handler{repos: repos, store: st}
}
