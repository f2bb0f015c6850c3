package repo

import (
	"context"
	"strings"
	"time"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// ClientPayload is the UI-facing write shape. Optional text fields are
// plain strings; blanks are normalized to absent on the way in.
type ClientPayload struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Notes   string `json:"notes"`
	// IsActive is honored on update only; nil keeps the current flag.
	IsActive *bool `json:"is_active"`
}

// ClientRecord is the UI-facing read shape; absent optionals come back
// as blank strings.
type ClientRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Notes     string    `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientRepo binds the client schema to the record store and lifecycle.
type ClientRepo struct {
	records store.Records[model.Client]
	life    *lifecycle.Manager
}

func clientToModel(p ClientPayload) *model.Client {
	return &model.Client{
		Name:    strings.TrimSpace(p.Name),
		Phone:   strings.TrimSpace(p.Phone),
		Email:   optional(p.Email),
		TaxID:   optional(p.TaxID),
		Address: optional(p.Address),
		City:    optional(p.City),
		State:   optional(p.State),
		Notes:   optional(p.Notes),
	}
}

func clientRecord(c *model.Client) ClientRecord {
	return ClientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     text(c.Email),
		TaxID:     text(c.TaxID),
		Address:   text(c.Address),
		City:      text(c.City),
		State:     text(c.State),
		Notes:     text(c.Notes),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ClientRepo) ListActive(ctx context.Context) ([]ClientRecord, error) {
	return r.list(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *ClientRepo) ListAll(ctx context.Context) ([]ClientRecord, error) {
	return r.list(ctx, store.ListFilter{})
}

func (r *ClientRepo) list(ctx context.Context, f store.ListFilter) ([]ClientRecord, error) {
	clients, err := r.records.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ClientRecord, 0, len(clients))
	for i := range clients {
		out = append(out, clientRecord(&clients[i]))
	}
	return out, nil
}

func (r *ClientRepo) Get(ctx context.Context, id int64) (ClientRecord, error) {
	c, err := r.records.Get(ctx, id)
	if err != nil {
		return ClientRecord{}, err
	}
	return clientRecord(c), nil
}

func (r *ClientRepo) Add(ctx context.Context, p ClientPayload) (ClientRecord, error) {
	c, err := r.records.Insert(ctx, clientToModel(p))
	if err != nil {
		return ClientRecord{}, err
	}
	return clientRecord(c), nil
}

func (r *ClientRepo) Update(ctx context.Context, id int64, p ClientPayload) (ClientRecord, error) {
	c, err := r.records.Update(ctx, id, clientToModel(p))
	if err != nil {
		return ClientRecord{}, err
	}
	// The store preserves the flag on update; an explicit is_active in
	// the payload goes through the dedicated mutator.
	if p.IsActive != nil && c.IsActive != *p.IsActive {
		if err := r.records.SetActive(ctx, id, *p.IsActive); err != nil {
			return ClientRecord{}, err
		}
		c.IsActive = *p.IsActive
	}
	return clientRecord(c), nil
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) (lifecycle.Outcome, error) {
	return r.life.Delete(ctx, id)
}

func (r *ClientRepo) Reactivate(ctx context.Context, id int64) (lifecycle.Result, error) {
	return r.life.Reactivate(ctx, id)
}
