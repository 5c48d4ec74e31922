// Package seed loads a small sample dataset for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/saludtotal/clinic/internal/domain/appointment"
	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/internal/domain/treatment"
)

type samplePatient struct {
	name    string
	age     int
	gender  string
	history string
	contact string
}

var samplePatients = []samplePatient{
	{"María García López", 34, "Femenino", "Hipertensión controlada", "555-0101"},
	{"Juan Pérez Martínez", 45, "Masculino", "Diabetes tipo 2", "555-0102"},
	{"Ana Rodríguez Silva", 28, "Femenino", "", "555-0103"},
	{"Carlos Sánchez Ruiz", 67, "Masculino", "Artritis, colesterol alto", "555-0104"},
	{"Lucía Fernández Torres", 19, "Femenino", "Asma leve", "555-0105"},
}

// Run inserts sample patients plus a few appointments and treatments.
// It is not idempotent; run it against an empty database.
func Run(ctx context.Context, patients *patient.Service, appointments *appointment.Service, treatments *treatment.Service, log zerolog.Logger) error {
	var created []*patient.Patient
	for _, sp := range samplePatients {
		p, err := patients.Create(ctx, sp.name, sp.age, sp.gender, sp.history, sp.contact)
		if err != nil {
			return fmt.Errorf("seed patient %q: %w", sp.name, err)
		}
		created = append(created, p)
	}
	log.Info().Int("count", len(created)).Msg("sample patients created")

	now := time.Now()
	apptSeeds := []struct {
		patient *patient.Patient
		offset  time.Duration
		doctor  string
		reason  string
	}{
		{created[0], 48 * time.Hour, "Dra. Elena Vargas", "Control de presión arterial"},
		{created[1], 5 * 24 * time.Hour, "Dr. Miguel Ángel Soto", "Revisión de glucemia"},
		{created[4], 10 * 24 * time.Hour, "Dra. Elena Vargas", "Evaluación respiratoria"},
	}
	for _, as := range apptSeeds {
		if _, err := appointments.Create(ctx, string(as.patient.ID), now.Add(as.offset), as.doctor, as.reason, nil); err != nil {
			return fmt.Errorf("seed appointment for %q: %w", as.patient.Name, err)
		}
	}
	log.Info().Int("count", len(apptSeeds)).Msg("sample appointments created")

	trtSeeds := []struct {
		patient      *patient.Patient
		diagnosis    string
		prescription string
	}{
		{created[0], "Hipertensión arterial", "Losartán 50mg cada 24 horas"},
		{created[1], "Diabetes mellitus tipo 2", "Metformina 850mg cada 12 horas"},
		{created[4], "Asma bronquial leve", "Salbutamol inhalador según necesidad"},
	}
	for _, ts := range trtSeeds {
		if _, err := treatments.Create(ctx, string(ts.patient.ID), ts.diagnosis, ts.prescription, time.Time{}); err != nil {
			return fmt.Errorf("seed treatment for %q: %w", ts.patient.Name, err)
		}
	}
	log.Info().Int("count", len(trtSeeds)).Msg("sample treatments created")

	return nil
}
