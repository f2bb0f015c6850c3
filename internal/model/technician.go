package model

import "errors"

// Technician is a member of the repair staff.
type Technician struct {
	Base
	Name      string  `gorm:"size:256;not null" json:"name"`
	Phone     *string `gorm:"size:32" json:"phone"`
	Specialty *string `gorm:"size:256" json:"specialty"`
}

func (t *Technician) SortKey() string { return t.Name }

func (t *Technician) UniqueKey() (string, string) { return "", "" }

func (t *Technician) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
