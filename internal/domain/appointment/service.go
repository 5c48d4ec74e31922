package appointment

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

// Service coordinates appointment scheduling against the repository
// and the patient directory.
type Service struct {
	repo     Repository
	patients PatientDirectory
}

// NewService wires the appointment service.
func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// Create schedules an appointment for an existing patient.
func (s *Service) Create(ctx context.Context, patientID string, date time.Time, doctorName, reason string, notes *string) (*Appointment, error) {
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

	a, err := New(pid, date, doctorName, reason, notes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns one appointment by id.
func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all appointments ordered by date.
func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.FindAll(ctx)
}

// ListByPatient returns a patient's appointments ordered by date.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	pid, err := patient.ParseID(patientID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByPatient(ctx, pid)
}

// Complete marks an appointment completed and persists it.
func (s *Service) Complete(ctx context.Context, id string) (*Appointment, error) {
	return s.transition(ctx, id, (*Appointment).Complete)
}

// Cancel marks an appointment cancelled and persists it.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	return s.transition(ctx, id, (*Appointment).Cancel)
}

func (s *Service) transition(ctx context.Context, id string, apply func(*Appointment) error) (*Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(a); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Upcoming returns scheduled appointments dated within horizonDays
// from now, including any whose date already passed.
func (s *Service) Upcoming(ctx context.Context, horizonDays int) ([]*Appointment, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Upcoming(all, horizonDays), nil
}
