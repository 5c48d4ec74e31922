package treatment

import (
	"context"

	"github.com/saludtotal/clinic/internal/domain/patient"
)

// Repository persists treatments. Treatments are never deleted;
// discontinuation is a status change.
type Repository interface {
	Save(ctx context.Context, t *Treatment) error
	FindByID(ctx context.Context, id string) (*Treatment, error)
	FindAll(ctx context.Context) ([]*Treatment, error)
	FindByPatient(ctx context.Context, patientID patient.ID) ([]*Treatment, error)
}
