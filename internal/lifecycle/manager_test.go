package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairshop-backend/internal/store"
)

// fakeRecords tracks lifecycle writes without a real medium.
type fakeRecords struct {
	active    map[int64]bool
	deleted   []int64
	setErr    error
	deleteErr error
}

func newFakeRecords(ids ...int64) *fakeRecords {
	f := &fakeRecords{active: make(map[int64]bool)}
	for _, id := range ids {
		f.active[id] = true
	}
	return f
}

func (f *fakeRecords) SetActive(ctx context.Context, id int64, active bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	if _, ok := f.active[id]; !ok {
		return fmt.Errorf("%w: id %d", store.ErrNotFound, id)
	}
	f.active[id] = active
	return nil
}

func (f *fakeRecords) HardDelete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.active[id]; !ok {
		return fmt.Errorf("%w: id %d", store.ErrNotFound, id)
	}
	delete(f.active, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func constCount(n int64) CountFunc {
	return func(ctx context.Context, id int64) (int64, error) { return n, nil }
}

func TestDeleteHardWhenNoDependents(t *testing.T) {
	records := newFakeRecords(1)
	m := NewManager("Client", records, constCount(0))

	out, err := m.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, ModeHard, out.Mode)
	assert.Equal(t, "Client deleted permanently.", out.Message)
	assert.Equal(t, []int64{1}, records.deleted)
}

func TestDeleteSoftWhenDependents(t *testing.T) {
	records := newFakeRecords(1)
	m := NewManager("Client", records, constCount(3))

	out, err := m.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, ModeSoft, out.Mode)
	assert.Equal(t, "Client has 3 associated record(s) and was marked inactive; history preserved.", out.Message)
	assert.False(t, records.active[1])
	assert.Empty(t, records.deleted, "soft delete must not purge the row")
}

func TestDeleteWithoutDependentConceptAlwaysSoft(t *testing.T) {
	records := newFakeRecords(7)
	m := NewManager("Technician", records, nil)

	out, err := m.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, ModeSoft, out.Mode)
	assert.False(t, records.active[7])
	assert.Empty(t, records.deleted)
}

func TestDeleteCountErrorBlocksWrites(t *testing.T) {
	records := newFakeRecords(1)
	countErr := errors.New("medium offline")
	m := NewManager("Client", records, func(ctx context.Context, id int64) (int64, error) {
		return 0, countErr
	})

	_, err := m.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, countErr)
	assert.True(t, records.active[1], "no write may happen before the count succeeds")
	assert.Empty(t, records.deleted)
}

func TestDeletePropagatesStoreErrors(t *testing.T) {
	records := newFakeRecords(1)
	records.deleteErr = errors.New("disk full")
	m := NewManager("Client", records, constCount(0))

	_, err := m.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, records.deleteErr, "store errors pass through unchanged")
}

func TestReactivate(t *testing.T) {
	records := newFakeRecords(1)
	m := NewManager("Client", records, constCount(1))

	_, err := m.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, records.active[1])

	// Idempotent: repeated calls all succeed and the record ends active.
	for i := 0; i < 3; i++ {
		res, err := m.Reactivate(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Client reactivated.", res.Message)
		assert.True(t, records.active[1])
	}
}

func TestReactivatePurgedIsNoOpSuccess(t *testing.T) {
	records := newFakeRecords()
	m := NewManager("Client", records, constCount(0))

	res, err := m.Reactivate(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestReactivateOtherErrorsPropagate(t *testing.T) {
	records := newFakeRecords(1)
	records.setErr = errors.New("medium offline")
	m := NewManager("Client", records, nil)

	_, err := m.Reactivate(context.Background(), 1)
	assert.ErrorIs(t, err, records.setErr)
}
