package repo

import (
	"context"
	"strings"
	"time"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// TechnicianPayload is the UI-facing write shape for technicians.
type TechnicianPayload struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	IsActive  *bool  `json:"is_active"`
}

// TechnicianRecord is the UI-facing read shape.
type TechnicianRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechnicianRepo binds the technician schema. Technicians have no
// dependents concept; deletes always deactivate.
type TechnicianRepo struct {
	records store.Records[model.Technician]
	life    *lifecycle.Manager
}

func technicianToModel(p TechnicianPayload) *model.Technician {
	return &model.Technician{
		Name:      strings.TrimSpace(p.Name),
		Phone:     optional(p.Phone),
		Specialty: optional(p.Specialty),
	}
}

func technicianRecord(t *model.Technician) TechnicianRecord {
	return TechnicianRecord{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     text(t.Phone),
		Specialty: text(t.Specialty),
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TechnicianRepo) ListActive(ctx context.Context) ([]TechnicianRecord, error) {
	return r.list(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *TechnicianRepo) ListAll(ctx context.Context) ([]TechnicianRecord, error) {
	return r.list(ctx, store.ListFilter{})
}

func (r *TechnicianRepo) list(ctx context.Context, f store.ListFilter) ([]TechnicianRecord, error) {
	techs, err := r.records.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]TechnicianRecord, 0, len(techs))
	for i := range techs {
		out = append(out, technicianRecord(&techs[i]))
	}
	return out, nil
}

func (r *TechnicianRepo) Get(ctx context.Context, id int64) (TechnicianRecord, error) {
	t, err := r.records.Get(ctx, id)
	if err != nil {
		return TechnicianRecord{}, err
	}
	return technicianRecord(t), nil
}

func (r *TechnicianRepo) Add(ctx context.Context, p TechnicianPayload) (TechnicianRecord, error) {
	t, err := r.records.Insert(ctx, technicianToModel(p))
	if err != nil {
		return TechnicianRecord{}, err
	}
	return technicianRecord(t), nil
}

func (r *TechnicianRepo) Update(ctx context.Context, id int64, p TechnicianPayload) (TechnicianRecord, error) {
	t, err := r.records.Update(ctx, id, technicianToModel(p))
	if err != nil {
		return TechnicianRecord{}, err
	}
	if p.IsActive != nil && t.IsActive != *p.IsActive {
		if err := r.records.SetActive(ctx, id, *p.IsActive); err != nil {
			return TechnicianRecord{}, err
		}
		t.IsActive = *p.IsActive
	}
	return technicianRecord(t), nil
}

func (r *TechnicianRepo) Delete(ctx context.Context, id int64) (lifecycle.Result, error) {
	out, err := r.life.Delete(ctx, id)
	if err != nil {
		return lifecycle.Result{}, err
	}
	return lifecycle.Result{Success: true, Message: out.Message}, nil
}

func (r *TechnicianRepo) Reactivate(ctx context.Context, id int64) (lifecycle.Result, error) {
	return r.life.Reactivate(ctx, id)
}
