package model

import "errors"

// ServiceType is a lookup label for the kind of work done on an order.
type ServiceType struct {
	Base
	Label string `gorm:"size:128;not null" json:"label"`
}

func (s *ServiceType) SortKey() string             { return s.Label }
func (s *ServiceType) UniqueKey() (string, string) { return "", "" }
func (s *ServiceType) Validate() error {
	if s.Label == "" {
		return errors.New("label is required")
	}
	return nil
}

// PaymentMethod is a lookup label for how an order is paid.
type PaymentMethod struct {
	Base
	Label string `gorm:"size:128;not null" json:"label"`
}

func (p *PaymentMethod) SortKey() string             { return p.Label }
func (p *PaymentMethod) UniqueKey() (string, string) { return "", "" }
func (p *PaymentMethod) Validate() error {
	if p.Label == "" {
		return errors.New("label is required")
	}
	return nil
}
