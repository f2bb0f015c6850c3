package model

import (
	"errors"
	"fmt"
	"time"
)

// ServiceOrder is a repair job. It references exactly one client and one
// equipment; those references block hard deletion of the parents for as
// long as the order exists, regardless of the order's own active flag.
type ServiceOrder struct {
	Base
	ClientID        int64      `gorm:"index;not null" json:"client_id"`
	EquipmentID     int64      `gorm:"index;not null" json:"equipment_id"`
	TechnicianID    int64      `gorm:"index" json:"technician_id"`
	ServiceTypeID   int64      `json:"service_type_id"`
	PaymentMethodID int64      `json:"payment_method_id"`
	Status          string     `gorm:"size:32;not null" json:"status"`
	Amount          float64    `gorm:"not null" json:"amount"`
	WarrantyUntil   *time.Time `json:"warranty_until"`
}

// Order status values.
const (
	OrderStatusOpen      = "open"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// SortKey keeps the key-value backend's ordering consistent with the
// relational ORDER BY id.
func (o *ServiceOrder) SortKey() string { return fmt.Sprintf("%012d", o.ID) }

func (o *ServiceOrder) UniqueKey() (string, string) { return "", "" }

func (o *ServiceOrder) Validate() error {
	if o.ClientID == 0 {
		return errors.New("client reference is required")
	}
	if o.EquipmentID == 0 {
		return errors.New("equipment reference is required")
	}
	if o.Status == "" {
		return errors.New("status is required")
	}
	return nil
}
