package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"repairshop-backend/internal/model"
)

// The same contract suite runs against both backends: callers must not
// be able to observe which medium is active.

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&model.Client{},
		&model.Equipment{},
		&model.Part{},
		&model.Technician{},
		&model.ServiceOrder{},
		&model.ServiceType{},
		&model.PaymentMethod{},
	))
	st := NewGormStore(gdb)
	t.Cleanup(func() { st.Close() })
	return st
}

func newBoltTestStore(t *testing.T) Store {
	t.Helper()
	st, err := OpenBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func strPtr(s string) *string { return &s }

func TestStoreContract(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"sqlite", newSQLiteStore},
		{"bolt", newBoltTestStore},
	}

	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			t.Run("InsertAssignsServerFields", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				c, err := st.Clients().Insert(ctx, &model.Client{
					Base:  model.Base{ID: 999, IsActive: false},
					Name:  "Oficina Teste",
					Phone: "7199999-0000",
				})
				require.NoError(t, err)
				assert.NotEqual(t, int64(999), c.ID, "caller-provided id must be ignored")
				assert.NotZero(t, c.ID)
				assert.True(t, c.IsActive, "records are created active")
				assert.False(t, c.CreatedAt.IsZero())
				assert.Equal(t, c.CreatedAt, c.UpdatedAt)

				got, err := st.Clients().Get(ctx, c.ID)
				require.NoError(t, err)
				assert.Equal(t, c.Name, got.Name)
			})

			t.Run("GetMissingIsNotFound", func(t *testing.T) {
				st := be.open(t)
				_, err := st.Clients().Get(context.Background(), 12345)
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("DuplicateTaxID", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				_, err := st.Clients().Insert(ctx, &model.Client{
					Name: "First", Phone: "1", TaxID: strPtr("123.456.789-00"),
				})
				require.NoError(t, err)

				_, err = st.Clients().Insert(ctx, &model.Client{
					Name: "Second", Phone: "2", TaxID: strPtr("123.456.789-00"),
				})
				assert.ErrorIs(t, err, ErrDuplicateKey)
			})

			t.Run("NullTaxIDNeverConflicts", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				for _, name := range []string{"A", "B", "C"} {
					_, err := st.Clients().Insert(ctx, &model.Client{Name: name, Phone: "1"})
					require.NoError(t, err)
				}
				all, err := st.Clients().List(ctx, ListFilter{})
				require.NoError(t, err)
				assert.Len(t, all, 3)
			})

			t.Run("DuplicateSerialNumber", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				_, err := st.Equipments().Insert(ctx, &model.Equipment{
					DeviceType: "Projetor", SerialNumber: strPtr("EP20230001"),
				})
				require.NoError(t, err)

				_, err = st.Equipments().Insert(ctx, &model.Equipment{
					DeviceType: "Projetor", SerialNumber: strPtr("EP20230001"),
				})
				assert.ErrorIs(t, err, ErrDuplicateKey)
			})

			t.Run("DuplicateKeyOnUpdate", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				_, err := st.Clients().Insert(ctx, &model.Client{
					Name: "First", Phone: "1", TaxID: strPtr("111"),
				})
				require.NoError(t, err)
				second, err := st.Clients().Insert(ctx, &model.Client{
					Name: "Second", Phone: "2", TaxID: strPtr("222"),
				})
				require.NoError(t, err)

				_, err = st.Clients().Update(ctx, second.ID, &model.Client{
					Name: "Second", Phone: "2", TaxID: strPtr("111"),
				})
				assert.ErrorIs(t, err, ErrDuplicateKey)
			})

			t.Run("UpdateRoundTrip", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				c, err := st.Clients().Insert(ctx, &model.Client{
					Name: "Before", Phone: "1", City: strPtr("Salvador"),
				})
				require.NoError(t, err)
				created := c.CreatedAt

				updated, err := st.Clients().Update(ctx, c.ID, &model.Client{
					Base:  model.Base{IsActive: true},
					Name:  "After",
					Phone: "2",
					Email: strPtr("after@example.com"),
				})
				require.NoError(t, err)
				assert.Equal(t, c.ID, updated.ID)
				assert.WithinDuration(t, created, updated.CreatedAt, time.Second, "creation timestamp is preserved")

				got, err := st.Clients().Get(ctx, c.ID)
				require.NoError(t, err)
				assert.Equal(t, "After", got.Name)
				assert.Equal(t, "2", got.Phone)
				require.NotNil(t, got.Email)
				assert.Equal(t, "after@example.com", *got.Email)
				assert.Nil(t, got.City, "fields absent from the update payload are cleared")
			})

			t.Run("UpdatePreservesActiveFlag", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				c, err := st.Clients().Insert(ctx, &model.Client{Name: "Flag", Phone: "1"})
				require.NoError(t, err)
				require.NoError(t, st.Clients().SetActive(ctx, c.ID, false))

				// The flag in the update payload is ignored; only
				// SetActive mutates it.
				_, err = st.Clients().Update(ctx, c.ID, &model.Client{
					Base: model.Base{IsActive: true}, Name: "Flag", Phone: "2",
				})
				require.NoError(t, err)

				got, err := st.Clients().Get(ctx, c.ID)
				require.NoError(t, err)
				assert.False(t, got.IsActive)
			})

			t.Run("UpdateMissingIsNotFound", func(t *testing.T) {
				st := be.open(t)
				_, err := st.Clients().Update(context.Background(), 777, &model.Client{
					Name: "Ghost", Phone: "1",
				})
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("SetActiveAndListViews", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				var ids []int64
				for _, name := range []string{"Bruno", "Alice", "Carla"} {
					c, err := st.Clients().Insert(ctx, &model.Client{Name: name, Phone: "1"})
					require.NoError(t, err)
					ids = append(ids, c.ID)
				}
				require.NoError(t, st.Clients().SetActive(ctx, ids[0], false)) // Bruno out

				active, err := st.Clients().List(ctx, ListFilter{ActiveOnly: true})
				require.NoError(t, err)
				require.Len(t, active, 2)
				assert.Equal(t, "Alice", active[0].Name, "active listing sorted by name")
				assert.Equal(t, "Carla", active[1].Name)
				for _, c := range active {
					assert.True(t, c.IsActive)
				}

				all, err := st.Clients().List(ctx, ListFilter{})
				require.NoError(t, err)
				require.Len(t, all, 3, "list-all is list-active plus inactives, no duplicates")
				names := []string{all[0].Name, all[1].Name, all[2].Name}
				assert.Equal(t, []string{"Alice", "Bruno", "Carla"}, names)

				// Deactivated record remains retrievable.
				got, err := st.Clients().Get(ctx, ids[0])
				require.NoError(t, err)
				assert.False(t, got.IsActive)

				// SetActive on a missing id reports NotFound.
				assert.ErrorIs(t, st.Clients().SetActive(ctx, 9999, false), ErrNotFound)
			})

			t.Run("HardDelete", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				c, err := st.Clients().Insert(ctx, &model.Client{Name: "Gone", Phone: "1"})
				require.NoError(t, err)
				require.NoError(t, st.Clients().HardDelete(ctx, c.ID))

				_, err = st.Clients().Get(ctx, c.ID)
				assert.ErrorIs(t, err, ErrNotFound)
				assert.ErrorIs(t, st.Clients().HardDelete(ctx, c.ID), ErrNotFound)
			})

			t.Run("ValidationRejected", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				_, err := st.Clients().Insert(ctx, &model.Client{Phone: "1"})
				assert.ErrorIs(t, err, ErrValidation)

				_, err = st.Parts().Insert(ctx, &model.Part{Name: "Lâmpada", Quantity: -1})
				assert.ErrorIs(t, err, ErrValidation)

				// Nothing was persisted by the rejected writes.
				parts, err := st.Parts().List(ctx, ListFilter{})
				require.NoError(t, err)
				assert.Empty(t, parts)
			})

			t.Run("DependentCounts", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				client, err := st.Clients().Insert(ctx, &model.Client{Name: "Escola Centro", Phone: "1"})
				require.NoError(t, err)
				equip, err := st.Equipments().Insert(ctx, &model.Equipment{DeviceType: "Projetor"})
				require.NoError(t, err)

				n, err := st.CountOrdersByClient(ctx, client.ID)
				require.NoError(t, err)
				assert.Zero(t, n)

				order, err := st.Orders().Insert(ctx, &model.ServiceOrder{
					ClientID: client.ID, EquipmentID: equip.ID, Status: model.OrderStatusOpen,
				})
				require.NoError(t, err)

				n, err = st.CountOrdersByClient(ctx, client.ID)
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)

				n, err = st.CountOrdersByEquipment(ctx, equip.ID)
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)

				// Historical orders still count: deactivating the order
				// does not release the parent.
				require.NoError(t, st.Orders().SetActive(ctx, order.ID, false))
				n, err = st.CountOrdersByClient(ctx, client.ID)
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)
			})

			t.Run("CountActiveTechnicians", func(t *testing.T) {
				st := be.open(t)
				ctx := context.Background()

				for _, name := range []string{"Roberto", "Ana"} {
					_, err := st.Technicians().Insert(ctx, &model.Technician{Name: name})
					require.NoError(t, err)
				}
				techs, err := st.Technicians().List(ctx, ListFilter{})
				require.NoError(t, err)
				require.NoError(t, st.Technicians().SetActive(ctx, techs[0].ID, false))

				n, err := st.CountActiveTechnicians(ctx)
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)
			})
		})
	}
}
