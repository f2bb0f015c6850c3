package repo

import (
	"context"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/store"
)

// LookupRepo serves the label tables (service types, payment methods).
// Pure pass-through; deletes always deactivate so historical orders keep
// resolving their labels.
type LookupRepo[T any] struct {
	records store.Records[T]
	life    *lifecycle.Manager
}

func (r *LookupRepo[T]) List(ctx context.Context) ([]T, error) {
	return r.records.List(ctx, store.ListFilter{})
}

func (r *LookupRepo[T]) ListActive(ctx context.Context) ([]T, error) {
	return r.records.List(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *LookupRepo[T]) Add(ctx context.Context, rec *T) (*T, error) {
	return r.records.Insert(ctx, rec)
}

func (r *LookupRepo[T]) Update(ctx context.Context, id int64, rec *T) (*T, error) {
	return r.records.Update(ctx, id, rec)
}

func (r *LookupRepo[T]) Delete(ctx context.Context, id int64) (lifecycle.Result, error) {
	out, err := r.life.Delete(ctx, id)
	if err != nil {
		return lifecycle.Result{}, err
	}
	return lifecycle.Result{Success: true, Message: out.Message}, nil
}
