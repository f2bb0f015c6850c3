package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

func newTestStore(t *testing.T) store.Store {
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
	return store.NewGormStore(gdb)
}

func newTestRepos(t *testing.T) (*Repos, store.Store) {
	st := newTestStore(t)
	t.Cleanup(func() { st.Close() })
	return New(st), st
}

func TestClientBlankOptionalsNormalize(t *testing.T) {
	repos, st := newTestRepos(t)
	ctx := context.Background()

	rec, err := repos.Clients.Add(ctx, ClientPayload{
		Name:  "Escola Municipal Centro",
		Phone: "7199999-0001",
		Email: "  ",
		TaxID: "",
		City:  "Salvador",
	})
	require.NoError(t, err)

	// Stored form: blanks are absent, not empty strings.
	raw, err := st.Clients().Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, raw.Email)
	assert.Nil(t, raw.TaxID)
	require.NotNil(t, raw.City)
	assert.Equal(t, "Salvador", *raw.City)

	// Read form: absent comes back as blank.
	got, err := repos.Clients.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, "", got.TaxID)
	assert.Equal(t, "Salvador", got.City)
}

// Two clients with blanked tax ids must not collide: the blank maps to
// absent before the uniqueness check ever sees it.
func TestClientBlankTaxIDNeverConflicts(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Clients.Add(ctx, ClientPayload{Name: "A", Phone: "1", TaxID: ""})
	require.NoError(t, err)
	_, err = repos.Clients.Add(ctx, ClientPayload{Name: "B", Phone: "2", TaxID: " "})
	require.NoError(t, err)
}

func TestClientUpdateKeepsActiveFlagWhenOmitted(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	rec, err := repos.Clients.Add(ctx, ClientPayload{Name: "A", Phone: "1"})
	require.NoError(t, err)

	inactive := false
	_, err = repos.Clients.Update(ctx, rec.ID, ClientPayload{Name: "A", Phone: "1", IsActive: &inactive})
	require.NoError(t, err)

	// Omitting is_active keeps the current flag rather than resetting it.
	got, err := repos.Clients.Update(ctx, rec.ID, ClientPayload{Name: "A2", Phone: "1"})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestEquipmentAccessoriesThroughStore(t *testing.T) {
	repos, st := newTestRepos(t)
	ctx := context.Background()

	rec, err := repos.Equipments.Add(ctx, EquipmentPayload{
		DeviceType:  "Projetor",
		Accessories: []string{"controle remoto", "cabo VGA"},
	})
	require.NoError(t, err)

	got, err := repos.Equipments.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"controle remoto", "cabo VGA"}, got.Accessories)

	// A corrupted stored value is cosmetic damage only.
	raw, err := st.Equipments().Get(ctx, rec.ID)
	require.NoError(t, err)
	raw.Accessories = "{not json"
	_, err = st.Equipments().Update(ctx, rec.ID, raw)
	require.NoError(t, err)

	got, err = repos.Equipments.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Accessories)
}
