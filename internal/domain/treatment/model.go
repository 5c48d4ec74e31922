// Package treatment implements clinic treatment tracking: diagnosis
// and prescription value objects, the treatment entity with its
// guarded status transitions, the domain service, and the Postgres
// repository.
package treatment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/pkg/domainerr"
)

// Status of a treatment. Active is the only initial state; completed
// and discontinued are terminal and stamp the end date.
type Status string

const (
	StatusActive       Status = "active"
	StatusCompleted    Status = "completed"
	StatusDiscontinued Status = "discontinued"
)

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusDiscontinued
}

// Terminal reports whether no further transition is defined.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusDiscontinued
}

// Diagnosis is a non-blank free-text description of the condition.
type Diagnosis string

// NewDiagnosis trims and validates the diagnosis text.
func NewDiagnosis(text string) (Diagnosis, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", domainerr.Invalid("diagnosis", "must not be empty")
	}
	return Diagnosis(trimmed), nil
}

// Valid reports whether the diagnosis is non-blank.
func (d Diagnosis) Valid() bool {
	return strings.TrimSpace(string(d)) != ""
}

// Prescription is a non-blank free-text description of the prescribed
// medication or therapy.
type Prescription string

// NewPrescription trims and validates the prescription text.
func NewPrescription(text string) (Prescription, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", domainerr.Invalid("prescription", "must not be empty")
	}
	return Prescription(trimmed), nil
}

// Valid reports whether the prescription is non-blank.
func (p Prescription) Valid() bool {
	return strings.TrimSpace(string(p)) != ""
}

// Treatment references exactly one patient by identifier.
type Treatment struct {
	ID           string
	PatientID    patient.ID
	Diagnosis    Diagnosis
	Prescription Prescription
	StartDate    time.Time
	EndDate      *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New starts a treatment. A zero startDate defaults to now; the end
// date stays unset until the treatment reaches a terminal state.
func New(patientID patient.ID, diagnosis, prescription string, startDate time.Time) (*Treatment, error) {
	ve := &domainerr.ValidationError{}
	d, err := NewDiagnosis(diagnosis)
	ve.Merge(err)
	p, err := NewPrescription(prescription)
	ve.Merge(err)
	if !ve.Empty() {
		return nil, ve
	}

	now := time.Now()
	if startDate.IsZero() {
		startDate = now
	}
	return &Treatment{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		Diagnosis:    d,
		Prescription: p,
		StartDate:    startDate,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Complete transitions active→completed and stamps the end date.
// Completing an already completed treatment is a no-op; completing a
// discontinued one is rejected.
func (t *Treatment) Complete() error {
	switch t.Status {
	case StatusCompleted:
		return nil
	case StatusActive:
		t.end(StatusCompleted)
		return nil
	default:
		return domainerr.Invalid("status", "cannot complete a discontinued treatment")
	}
}

// Discontinue transitions active→discontinued and stamps the end
// date, with the same guard shape as Complete.
func (t *Treatment) Discontinue() error {
	switch t.Status {
	case StatusDiscontinued:
		return nil
	case StatusActive:
		t.end(StatusDiscontinued)
		return nil
	default:
		return domainerr.Invalid("status", "cannot discontinue a completed treatment")
	}
}

func (t *Treatment) end(s Status) {
	now := time.Now()
	if now.Before(t.StartDate) {
		now = t.StartDate
	}
	t.Status = s
	t.EndDate = &now
	t.touch()
}

func (t *Treatment) touch() {
	if now := time.Now(); now.After(t.UpdatedAt) {
		t.UpdatedAt = now
	}
}

// ActiveOnly filters to treatments still in the active state.
func ActiveOnly(treatments []*Treatment) []*Treatment {
	var result []*Treatment
	for _, t := range treatments {
		if t.Status == StatusActive {
			result = append(result, t)
		}
	}
	return result
}
