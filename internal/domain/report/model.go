// Package report builds clinic statistics snapshots from the patient,
// appointment and treatment collections.
package report

import (
	"time"

	"github.com/saludtotal/clinic/internal/domain/appointment"
	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/internal/domain/treatment"
)

// AgeRanges are the fixed buckets of the patient report, in display
// order.
var AgeRanges = []string{"0-18", "19-30", "31-50", "51-70", "71+"}

// Report is a point-in-time statistics snapshot. Every gender and age
// range appears in its map even when the count is zero.
type Report struct {
	GeneratedAt          time.Time      `json:"generated_at"`
	TotalPatients        int            `json:"total_patients"`
	PatientsByGender     map[string]int `json:"patients_by_gender"`
	PatientsByAgeRange   map[string]int `json:"patients_by_age_range"`
	RecentPatients       []patient.DTO  `json:"recent_patients"`
	ActiveTreatments     int            `json:"active_treatments"`
	UpcomingAppointments int            `json:"upcoming_appointments"`
}

// Generate computes the snapshot at the given instant. Recent patients
// are those registered within recentDays before now. Upcoming
// appointments are scheduled ones dated strictly after now, with no
// upper bound.
func Generate(patients []*patient.Patient, appointments []*appointment.Appointment, treatments []*treatment.Treatment, now time.Time, recentDays int) *Report {
	r := &Report{
		GeneratedAt:        now,
		TotalPatients:      len(patients),
		PatientsByGender:   make(map[string]int, len(patient.Genders)),
		PatientsByAgeRange: make(map[string]int, len(AgeRanges)),
		RecentPatients:     []patient.DTO{},
	}
	for _, g := range patient.Genders {
		r.PatientsByGender[string(g)] = 0
	}
	for _, ar := range AgeRanges {
		r.PatientsByAgeRange[ar] = 0
	}

	recentCutoff := now.AddDate(0, 0, -recentDays)
	for _, p := range patients {
		r.PatientsByGender[string(p.Gender)]++
		r.PatientsByAgeRange[ageRange(p.Age.Int())]++
		if !p.CreatedAt.Before(recentCutoff) {
			r.RecentPatients = append(r.RecentPatients, p.ToDTO())
		}
	}

	for _, a := range appointments {
		if a.Status == appointment.StatusScheduled && a.Date.After(now) {
			r.UpcomingAppointments++
		}
	}
	for _, t := range treatments {
		if t.Status == treatment.StatusActive {
			r.ActiveTreatments++
		}
	}
	return r
}

func ageRange(age int) string {
	switch {
	case age <= 18:
		return "0-18"
	case age <= 30:
		return "19-30"
	case age <= 50:
		return "31-50"
	case age <= 70:
		return "51-70"
	default:
		return "71+"
	}
}
