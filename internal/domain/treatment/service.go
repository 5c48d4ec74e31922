package treatment

import (
	"context"
	"fmt"
	"time"

	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/pkg/domainerr"
)

// PatientDirectory answers whether a patient identifier exists. The
// patient service satisfies it.
type PatientDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service coordinates treatment tracking against the repository and
// the patient directory.
type Service struct {
	repo     Repository
	patients PatientDirectory
}

// NewService wires the treatment service.
func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// Create starts a treatment for an existing patient. A zero startDate
// defaults to now.
func (s *Service) Create(ctx context.Context, patientID, diagnosis, prescription string, startDate time.Time) (*Treatment, error) {
	pid, err := patient.ParseID(patientID)
	if err != nil {
		return nil, err
	}
	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", patientID, domainerr.ErrNotFound)
	}

	t, err := New(pid, diagnosis, prescription, startDate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns one treatment by id.
func (s *Service) Get(ctx context.Context, id string) (*Treatment, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all treatments ordered by start date.
func (s *Service) List(ctx context.Context) ([]*Treatment, error) {
	return s.repo.FindAll(ctx)
}

// ListByPatient returns a patient's treatments ordered by start date.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Treatment, error) {
	pid, err := patient.ParseID(patientID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByPatient(ctx, pid)
}

// Active returns treatments still in the active state.
func (s *Service) Active(ctx context.Context) ([]*Treatment, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ActiveOnly(all), nil
}

// Complete marks a treatment completed and persists it.
func (s *Service) Complete(ctx context.Context, id string) (*Treatment, error) {
	return s.transition(ctx, id, (*Treatment).Complete)
}

// Discontinue marks a treatment discontinued and persists it.
func (s *Service) Discontinue(ctx context.Context, id string) (*Treatment, error) {
	return s.transition(ctx, id, (*Treatment).Discontinue)
}

func (s *Service) transition(ctx context.Context, id string, apply func(*Treatment) error) (*Treatment, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(t); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
