package repo

import (
	"context"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// OrderRepo binds service orders. Orders are history: they are never
// hard-deleted once written, so delete follows the plain soft path.
type OrderRepo struct {
	records store.Records[model.ServiceOrder]
	life    *lifecycle.Manager
}

func (r *OrderRepo) ListActive(ctx context.Context) ([]model.ServiceOrder, error) {
	return r.records.List(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *OrderRepo) ListAll(ctx context.Context) ([]model.ServiceOrder, error) {
	return r.records.List(ctx, store.ListFilter{})
}

func (r *OrderRepo) Get(ctx context.Context, id int64) (*model.ServiceOrder, error) {
	return r.records.Get(ctx, id)
}

func (r *OrderRepo) Add(ctx context.Context, o *model.ServiceOrder) (*model.ServiceOrder, error) {
	if o.Status == "" {
		o.Status = model.OrderStatusOpen
	}
	return r.records.Insert(ctx, o)
}

func (r *OrderRepo) Update(ctx context.Context, id int64, o *model.ServiceOrder) (*model.ServiceOrder, error) {
	return r.records.Update(ctx, id, o)
}

func (r *OrderRepo) Delete(ctx context.Context, id int64) (lifecycle.Result, error) {
	out, err := r.life.Delete(ctx, id)
	if err != nil {
		return lifecycle.Result{}, err
	}
	return lifecycle.Result{Success: true, Message: out.Message}, nil
}

func (r *OrderRepo) Reactivate(ctx context.Context, id int64) (lifecycle.Result, error) {
	return r.life.Reactivate(ctx, id)
}
