package patient

import "context"

// Repository is the persistence contract for patients. FindByID and
// Delete return domainerr.ErrNotFound (possibly wrapped) when the
// identifier resolves to nothing.
type Repository interface {
	Save(ctx context.Context, p *Patient) error
	FindByID(ctx context.Context, id ID) (*Patient, error)
	FindAll(ctx context.Context) ([]*Patient, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*Patient, error)
	Delete(ctx context.Context, id ID) error
}
