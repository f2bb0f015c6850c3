package model

import (
	"errors"
	"fmt"
)

// Client is a customer of the shop. Optional text columns are pointers so
// that "not provided" is stored as NULL rather than an empty string.
type Client struct {
	Base
	Name    string  `gorm:"size:256;not null" json:"name"`
	Phone   string  `gorm:"size:32;not null" json:"phone"`
	Email   *string `gorm:"size:256" json:"email"`
	TaxID   *string `gorm:"column:tax_id;size:32;uniqueIndex" json:"tax_id"`
	Address *string `gorm:"size:256" json:"address"`
	City    *string `gorm:"size:128" json:"city"`
	State   *string `gorm:"size:64" json:"state"`
	Notes   *string `json:"notes"`
}

func (c *Client) SortKey() string { return c.Name }

// UniqueKey reports the column whose value must be unique across clients.
// An empty value means there is nothing to enforce for this record.
func (c *Client) UniqueKey() (string, string) {
	if c.TaxID == nil {
		return "tax_id", ""
	}
	return "tax_id", *c.TaxID
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Phone == "" {
		return fmt.Errorf("phone is required for client %q", c.Name)
	}
	return nil
}
