package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"repairshop-backend/internal/model"
)

// gormStore implements Store over a relational database through GORM.
// The same code path serves the embedded SQLite file and the optional
// Postgres backend; the driver is chosen when the *gorm.DB is opened.
type gormStore struct {
	db *gorm.DB

	clients        Records[model.Client]
	equipments     Records[model.Equipment]
	parts          Records[model.Part]
	technicians    Records[model.Technician]
	orders         Records[model.ServiceOrder]
	serviceTypes   Records[model.ServiceType]
	paymentMethods Records[model.PaymentMethod]
}

// NewGormStore creates a relational-backed store. The *gorm.DB must be
// opened with TranslateError enabled so unique-key violations arrive as
// gorm.ErrDuplicatedKey from either driver.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		db:             db,
		clients:        newGormRecords[model.Client, *model.Client](db, "name"),
		equipments:     newGormRecords[model.Equipment, *model.Equipment](db, "device_type"),
		parts:          newGormRecords[model.Part, *model.Part](db, "name"),
		technicians:    newGormRecords[model.Technician, *model.Technician](db, "name"),
		orders:         newGormRecords[model.ServiceOrder, *model.ServiceOrder](db, "id"),
		serviceTypes:   newGormRecords[model.ServiceType, *model.ServiceType](db, "label"),
		paymentMethods: newGormRecords[model.PaymentMethod, *model.PaymentMethod](db, "label"),
	}
}

func (s *gormStore) Clients() Records[model.Client]               { return s.clients }
func (s *gormStore) Equipments() Records[model.Equipment]         { return s.equipments }
func (s *gormStore) Parts() Records[model.Part]                   { return s.parts }
func (s *gormStore) Technicians() Records[model.Technician]       { return s.technicians }
func (s *gormStore) Orders() Records[model.ServiceOrder]          { return s.orders }
func (s *gormStore) ServiceTypes() Records[model.ServiceType]     { return s.serviceTypes }
func (s *gormStore) PaymentMethods() Records[model.PaymentMethod] { return s.paymentMethods }

func (s *gormStore) CountOrdersByClient(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.ServiceOrder{}).
		Where("client_id = ?", clientID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting orders for client %d: %w", clientID, err)
	}
	return n, nil
}

func (s *gormStore) CountOrdersByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.ServiceOrder{}).
		Where("equipment_id = ?", equipmentID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting orders for equipment %d: %w", equipmentID, err)
	}
	return n, nil
}

func (s *gormStore) CountActiveTechnicians(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Technician{}).
		Where("is_active = ?", true).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting active technicians: %w", err)
	}
	return n, nil
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormRecords is the generic relational adapter for one entity.
type gormRecords[T any, PT entityPtr[T]] struct {
	db      *gorm.DB
	orderBy string
}

func newGormRecords[T any, PT entityPtr[T]](db *gorm.DB, orderBy string) Records[T] {
	return &gormRecords[T, PT]{db: db, orderBy: orderBy}
}

func (r *gormRecords[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &rec, nil
}

func (r *gormRecords[T, PT]) List(ctx context.Context, f ListFilter) ([]T, error) {
	q := r.db.WithContext(ctx)
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true).Order(r.orderBy)
	} else {
		// Active-before-inactive as a secondary key after the natural sort.
		q = q.Order(fmt.Sprintf("%s, is_active DESC", r.orderBy))
	}
	var recs []T
	if err := q.Find(&recs).Error; err != nil {
		return nil, translateGormError(err)
	}
	return recs, nil
}

func (r *gormRecords[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	now := time.Now().UTC()
	p.SetEntityID(0)
	p.SetActiveFlag(true)
	p.SetTimestamps(now, now)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, translateGormError(err)
	}
	return rec, nil
}

func (r *gormRecords[T, PT]) Update(ctx context.Context, id int64, rec *T) (*T, error) {
	p := PT(rec)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.SetEntityID(id)
	p.SetActiveFlag(PT(existing).Active())
	p.SetTimestamps(PT(existing).CreatedTime(), time.Now().UTC())
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, translateGormError(err)
	}
	return rec, nil
}

func (r *gormRecords[T, PT]) SetActive(ctx context.Context, id int64, active bool) error {
	var zero T
	res := r.db.WithContext(ctx).Model(&zero).Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func (r *gormRecords[T, PT]) HardDelete(ctx context.Context, id int64) error {
	var zero T
	res := r.db.WithContext(ctx).Delete(&zero, id)
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// translateGormError folds driver-level failures into the store's error
// kinds so both backends surface identical errors.
func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrDuplicateKey, err)
	}
	return err
}
