package repo

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// EquipmentPayload is the UI-facing write shape. The accessory list is a
// sequence here and a single stored scalar at rest.
type EquipmentPayload struct {
	SerialNumber  string   `json:"serial_number"`
	DeviceType    string   `json:"device_type" binding:"required"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Color         string   `json:"color"`
	Accessories   []string `json:"accessories"`
	ReportedIssue string   `json:"reported_issue"`
	IsActive      *bool    `json:"is_active"`
}

// EquipmentRecord is the UI-facing read shape.
type EquipmentRecord struct {
	ID            int64     `json:"id"`
	SerialNumber  string    `json:"serial_number"`
	DeviceType    string    `json:"device_type"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Color         string    `json:"color"`
	Accessories   []string  `json:"accessories"`
	ReportedIssue string    `json:"reported_issue"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EquipmentRepo binds the equipment schema to the record store and
// lifecycle.
type EquipmentRepo struct {
	records store.Records[model.Equipment]
	life    *lifecycle.Manager
}

// encodeAccessories serializes the accessory list to its stored scalar
// form. An empty list stores as an empty string, not "[]".
func encodeAccessories(items []string) string {
	if len(items) == 0 {
		return ""
	}
	data, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	return string(data)
}

// decodeAccessories is lenient: accessories are cosmetic metadata, so a
// malformed stored value decodes to an empty list instead of failing.
func decodeAccessories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}

func equipmentToModel(p EquipmentPayload) *model.Equipment {
	return &model.Equipment{
		SerialNumber:  optional(p.SerialNumber),
		DeviceType:    strings.TrimSpace(p.DeviceType),
		Brand:         optional(p.Brand),
		Model:         optional(p.Model),
		Color:         optional(p.Color),
		Accessories:   encodeAccessories(p.Accessories),
		ReportedIssue: optional(p.ReportedIssue),
	}
}

func equipmentRecord(e *model.Equipment) EquipmentRecord {
	return EquipmentRecord{
		ID:            e.ID,
		SerialNumber:  text(e.SerialNumber),
		DeviceType:    e.DeviceType,
		Brand:         text(e.Brand),
		Model:         text(e.Model),
		Color:         text(e.Color),
		Accessories:   decodeAccessories(e.Accessories),
		ReportedIssue: text(e.ReportedIssue),
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *EquipmentRepo) ListActive(ctx context.Context) ([]EquipmentRecord, error) {
	return r.list(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *EquipmentRepo) ListAll(ctx context.Context) ([]EquipmentRecord, error) {
	return r.list(ctx, store.ListFilter{})
}

func (r *EquipmentRepo) list(ctx context.Context, f store.ListFilter) ([]EquipmentRecord, error) {
	items, err := r.records.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentRecord, 0, len(items))
	for i := range items {
		out = append(out, equipmentRecord(&items[i]))
	}
	return out, nil
}

func (r *EquipmentRepo) Get(ctx context.Context, id int64) (EquipmentRecord, error) {
	e, err := r.records.Get(ctx, id)
	if err != nil {
		return EquipmentRecord{}, err
	}
	return equipmentRecord(e), nil
}

func (r *EquipmentRepo) Add(ctx context.Context, p EquipmentPayload) (EquipmentRecord, error) {
	e, err := r.records.Insert(ctx, equipmentToModel(p))
	if err != nil {
		return EquipmentRecord{}, err
	}
	return equipmentRecord(e), nil
}

func (r *EquipmentRepo) Update(ctx context.Context, id int64, p EquipmentPayload) (EquipmentRecord, error) {
	e, err := r.records.Update(ctx, id, equipmentToModel(p))
	if err != nil {
		return EquipmentRecord{}, err
	}
	if p.IsActive != nil && e.IsActive != *p.IsActive {
		if err := r.records.SetActive(ctx, id, *p.IsActive); err != nil {
			return EquipmentRecord{}, err
		}
		e.IsActive = *p.IsActive
	}
	return equipmentRecord(e), nil
}

func (r *EquipmentRepo) Delete(ctx context.Context, id int64) (lifecycle.Outcome, error) {
	return r.life.Delete(ctx, id)
}

func (r *EquipmentRepo) Reactivate(ctx context.Context, id int64) (lifecycle.Result, error) {
	return r.life.Reactivate(ctx, id)
}
