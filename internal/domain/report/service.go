package report

import (
	"context"
	"fmt"
	"time"

	"github.com/saludtotal/clinic/internal/domain/appointment"
	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/internal/domain/treatment"
)

// Service assembles reports from the three domain repositories.
type Service struct {
	patients     patient.Repository
	appointments appointment.Repository
	treatments   treatment.Repository
	recentDays   int
}

// NewService wires the report service. recentDays controls the
// recent-patient window.
func NewService(patients patient.Repository, appointments appointment.Repository, treatments treatment.Repository, recentDays int) *Service {
	return &Service{
		patients:     patients,
		appointments: appointments,
		treatments:   treatments,
		recentDays:   recentDays,
	}
}

// PatientReport generates the statistics snapshot as of now.
func (s *Service) PatientReport(ctx context.Context) (*Report, error) {
	patients, err := s.patients.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	appointments, err := s.appointments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	treatments, err := s.treatments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load treatments: %w", err)
	}
	return Generate(patients, appointments, treatments, time.Now(), s.recentDays), nil
}
