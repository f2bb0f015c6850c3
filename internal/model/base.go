package model

import "time"

// Base carries the identity and lifecycle columns shared by every entity.
// All records are created active; deactivation and reactivation go through
// the lifecycle manager, never through plain field updates.
type Base struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (b *Base) EntityID() int64        { return b.ID }
func (b *Base) SetEntityID(id int64)   { b.ID = id }
func (b *Base) Active() bool           { return b.IsActive }
func (b *Base) SetActiveFlag(v bool)   { b.IsActive = v }
func (b *Base) CreatedTime() time.Time { return b.CreatedAt }

// SetTimestamps assigns the server-managed time columns.
func (b *Base) SetTimestamps(created, updated time.Time) {
	b.CreatedAt = created
	b.UpdatedAt = updated
}
