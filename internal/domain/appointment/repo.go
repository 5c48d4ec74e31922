package appointment

import (
	"context"

	"github.com/saludtotal/clinic/internal/domain/patient"
)

// Repository persists appointments. Appointments are never deleted;
// cancellation is a status change.
type Repository interface {
	Save(ctx context.Context, a *Appointment) error
	FindByID(ctx context.Context, id string) (*Appointment, error)
	FindAll(ctx context.Context) ([]*Appointment, error)
	FindByPatient(ctx context.Context, patientID patient.ID) ([]*Appointment, error)
}
