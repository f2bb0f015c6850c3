package model

import "errors"

// Equipment is a device brought in for repair. Accessories is the raw
// stored form of the accessory list; the repository layer encodes and
// decodes it, treating malformed values as an empty list.
type Equipment struct {
	Base
	SerialNumber  *string `gorm:"size:64;uniqueIndex" json:"serial_number"`
	DeviceType    string  `gorm:"size:128;not null" json:"device_type"`
	Brand         *string `gorm:"size:128" json:"brand"`
	Model         *string `gorm:"size:128" json:"model"`
	Color         *string `gorm:"size:64" json:"color"`
	Accessories   string  `gorm:"size:2048" json:"accessories"`
	ReportedIssue *string `json:"reported_issue"`
}

func (e *Equipment) SortKey() string { return e.DeviceType }

func (e *Equipment) UniqueKey() (string, string) {
	if e.SerialNumber == nil {
		return "serial_number", ""
	}
	return "serial_number", *e.SerialNumber
}

func (e *Equipment) Validate() error {
	if e.DeviceType == "" {
		return errors.New("device type is required")
	}
	return nil
}
