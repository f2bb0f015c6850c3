package store

import (
	"context"
	"time"

	"repairshop-backend/internal/model"
)

// Entity is the behavior every persisted model provides so that one
// generic adapter can serve all of them. Implemented by embedding
// model.Base plus per-entity SortKey/UniqueKey/Validate.
type Entity interface {
	EntityID() int64
	SetEntityID(int64)
	Active() bool
	SetActiveFlag(bool)
	CreatedTime() time.Time
	SetTimestamps(created, updated time.Time)

	// SortKey is the natural ordering key for listings.
	SortKey() string
	// UniqueKey names the column that must be unique and this record's
	// value for it; an empty value means nothing to enforce.
	UniqueKey() (column, value string)
	Validate() error
}

// entityPtr constrains a pointer type to both *T and Entity, letting the
// generic adapters call Entity methods on freshly allocated records.
type entityPtr[T any] interface {
	*T
	Entity
}

// ListFilter narrows a listing. The zero value lists everything, sorted
// by the natural key with active records before inactive ones.
type ListFilter struct {
	ActiveOnly bool
}

// Records is the uniform persistence contract over one entity's rows.
// Both backends implement identical semantics; callers cannot observe
// which one is active.
type Records[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, f ListFilter) ([]T, error)
	// Insert assigns the id, timestamps and the active flag; the caller's
	// values for those fields are ignored.
	Insert(ctx context.Context, rec *T) (*T, error)
	// Update replaces all caller-settable fields. The creation timestamp
	// and the active flag are preserved; SetActive is the only flag
	// mutator.
	Update(ctx context.Context, id int64, rec *T) (*T, error)
	SetActive(ctx context.Context, id int64, active bool) error
	HardDelete(ctx context.Context, id int64) error
}

// Store groups the per-entity record sets plus the read-only queries the
// lifecycle manager and its callers need. One Store instance is built at
// startup and injected everywhere; there is no package-level handle.
type Store interface {
	Clients() Records[model.Client]
	Equipments() Records[model.Equipment]
	Parts() Records[model.Part]
	Technicians() Records[model.Technician]
	Orders() Records[model.ServiceOrder]
	ServiceTypes() Records[model.ServiceType]
	PaymentMethods() Records[model.PaymentMethod]

	// Dependent counts for the delete-mode decision. Both ignore the
	// order's own active flag: historical orders still pin their parents.
	CountOrdersByClient(ctx context.Context, clientID int64) (int64, error)
	CountOrdersByEquipment(ctx context.Context, equipmentID int64) (int64, error)

	// CountActiveTechnicians supports the at-least-one-active-technician
	// rule enforced above this layer.
	CountActiveTechnicians(ctx context.Context) (int64, error)

	Close() error
}
