// Package appointment implements clinic appointment scheduling: the
// entity with its guarded status transitions, the domain service, and
// the Postgres repository.
package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/pkg/domainerr"
)

// Status of an appointment. Scheduled is the only initial state;
// completed and cancelled are terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// Terminal reports whether no further transition is defined.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment references exactly one patient by identifier. The
// reference is not an ownership relation.
type Appointment struct {
	ID         string
	PatientID  patient.ID
	Date       time.Time
	DoctorName string
	Reason     string
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New schedules an appointment. The date must be strictly in the
// future at the moment of scheduling; it is not re-checked later.
func New(patientID patient.ID, date time.Time, doctorName, reason string, notes *string) (*Appointment, error) {
	ve := &domainerr.ValidationError{}
	if !date.After(time.Now()) {
		ve.Add("date", "must be in the future")
	}
	if strings.TrimSpace(doctorName) == "" {
		ve.Add("doctor_name", "must not be empty")
	}
	if strings.TrimSpace(reason) == "" {
		ve.Add("reason", "must not be empty")
	}
	if !ve.Empty() {
		return nil, ve
	}

	now := time.Now()
	return &Appointment{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		Date:       date,
		DoctorName: doctorName,
		Reason:     reason,
		Status:     StatusScheduled,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Complete transitions scheduled→completed. Completing an already
// completed appointment is a no-op; completing a cancelled one is
// rejected.
func (a *Appointment) Complete() error {
	switch a.Status {
	case StatusCompleted:
		return nil
	case StatusScheduled:
		a.Status = StatusCompleted
		a.touch()
		return nil
	default:
		return domainerr.Invalid("status", "cannot complete a cancelled appointment")
	}
}

// Cancel transitions scheduled→cancelled, with the same guard shape as
// Complete.
func (a *Appointment) Cancel() error {
	switch a.Status {
	case StatusCancelled:
		return nil
	case StatusScheduled:
		a.Status = StatusCancelled
		a.touch()
		return nil
	default:
		return domainerr.Invalid("status", "cannot cancel a completed appointment")
	}
}

func (a *Appointment) touch() {
	if now := time.Now(); now.After(a.UpdatedAt) {
		a.UpdatedAt = now
	}
}

// Upcoming filters to scheduled appointments dated no later than
// now + horizonDays. Only the upper bound is checked, so a scheduled
// appointment whose date has already passed is still included.
func Upcoming(appointments []*Appointment, horizonDays int) []*Appointment {
	cutoff := time.Now().AddDate(0, 0, horizonDays)
	var result []*Appointment
	for _, a := range appointments {
		if a.Status == StatusScheduled && !a.Date.After(cutoff) {
			result = append(result, a)
		}
	}
	return result
}
