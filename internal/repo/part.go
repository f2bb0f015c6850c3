package repo

import (
	"context"

	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// PartRepo is a pass-through binding: parts have no optional text fields
// to normalize and no dependents concept, so deletes always deactivate.
type PartRepo struct {
	records store.Records[model.Part]
	life    *lifecycle.Manager
}

func (r *PartRepo) ListActive(ctx context.Context) ([]model.Part, error) {
	return r.records.List(ctx, store.ListFilter{ActiveOnly: true})
}

func (r *PartRepo) ListAll(ctx context.Context) ([]model.Part, error) {
	return r.records.List(ctx, store.ListFilter{})
}

func (r *PartRepo) Get(ctx context.Context, id int64) (*model.Part, error) {
	return r.records.Get(ctx, id)
}

func (r *PartRepo) Add(ctx context.Context, p *model.Part) (*model.Part, error) {
	return r.records.Insert(ctx, p)
}

func (r *PartRepo) Update(ctx context.Context, id int64, p *model.Part) (*model.Part, error) {
	return r.records.Update(ctx, id, p)
}

func (r *PartRepo) Delete(ctx context.Context, id int64) (lifecycle.Result, error) {
	out, err := r.life.Delete(ctx, id)
	if err != nil {
		return lifecycle.Result{}, err
	}
	return lifecycle.Result{Success: true, Message: out.Message}, nil
}

func (r *PartRepo) Reactivate(ctx context.Context, id int64) (lifecycle.Result, error) {
	return r.life.Reactivate(ctx, id)
}
