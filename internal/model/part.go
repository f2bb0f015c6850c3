package model

import (
	"errors"
	"fmt"
)

// Part is a spare part kept in stock.
type Part struct {
	Base
	Type      string  `gorm:"size:128" json:"type"`
	Name      string  `gorm:"size:256;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

func (p *Part) SortKey() string { return p.Name }

func (p *Part) UniqueKey() (string, string) { return "", "" }

func (p *Part) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", p.Quantity)
	}
	if p.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative, got %v", p.UnitPrice)
	}
	return nil
}
