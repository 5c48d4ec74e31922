package report

import (
	"testing"
	"time"

	"github.com/saludtotal/clinic/internal/domain/appointment"
	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/internal/domain/treatment"
)

func mustPatient(t *testing.T, name string, age int, gender string) *patient.Patient {
	t.Helper()
	p, err := patient.New(name, age, gender, "", "555-0100")
	if err != nil {
		t.Fatalf("patient.New: %v", err)
	}
	return p
}

func TestAgeRangeBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{0, "0-18"},
		{18, "0-18"},
		{19, "19-30"},
		{30, "19-30"},
		{31, "31-50"},
		{50, "31-50"},
		{51, "51-70"},
		{70, "51-70"},
		{71, "71+"},
		{150, "71+"},
	}
	for _, tc := range cases {
		if got := ageRange(tc.age); got != tc.want {
			t.Errorf("ageRange(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	now := time.Now()
	patients := []*patient.Patient{
		mustPatient(t, "Ana", 10, "Femenino"),
		mustPatient(t, "Luis", 25, "Masculino"),
		mustPatient(t, "Eva", 45, "Femenino"),
		mustPatient(t, "Juan", 65, "Masculino"),
		mustPatient(t, "Sol", 85, "Otro"),
	}

	r := Generate(patients, nil, nil, now, 30)

	if r.TotalPatients != 5 {
		t.Errorf("total = %d, want 5", r.TotalPatients)
	}
	wantGender := map[string]int{"Masculino": 2, "Femenino": 2, "Otro": 1}
	for g, want := range wantGender {
		if r.PatientsByGender[g] != want {
			t.Errorf("gender %q = %d, want %d", g, r.PatientsByGender[g], want)
		}
	}
	for _, ar := range AgeRanges {
		if r.PatientsByAgeRange[ar] != 1 {
			t.Errorf("age range %q = %d, want 1", ar, r.PatientsByAgeRange[ar])
		}
	}
}

func TestGenerateZeroKeysPresent(t *testing.T) {
	r := Generate(nil, nil, nil, time.Now(), 30)

	if len(r.PatientsByGender) != len(patient.Genders) {
		t.Errorf("gender keys = %d, want %d", len(r.PatientsByGender), len(patient.Genders))
	}
	for _, ar := range AgeRanges {
		if _, ok := r.PatientsByAgeRange[ar]; !ok {
			t.Errorf("missing age range key %q", ar)
		}
	}
	if r.RecentPatients == nil {
		t.Error("recent patients should be an empty slice, not nil")
	}
}

func TestGenerateRecentPatients(t *testing.T) {
	now := time.Now()
	recent := mustPatient(t, "Ana", 30, "Femenino")
	recent.CreatedAt = now.AddDate(0, 0, -5)
	old := mustPatient(t, "Luis", 40, "Masculino")
	old.CreatedAt = now.AddDate(0, 0, -31)

	r := Generate([]*patient.Patient{recent, old}, nil, nil, now, 30)

	if len(r.RecentPatients) != 1 {
		t.Fatalf("recent = %d, want 1", len(r.RecentPatients))
	}
	if r.RecentPatients[0].Name != "Ana" {
		t.Errorf("recent patient = %q, want Ana", r.RecentPatients[0].Name)
	}
}

func TestGenerateUpcomingAppointments(t *testing.T) {
	now := time.Now()
	newAppt := func(offset time.Duration) *appointment.Appointment {
		a, err := appointment.New(patient.ID("p1"), now.Add(48*time.Hour), "Dr. Ruiz", "Control", nil)
		if err != nil {
			t.Fatal(err)
		}
		a.Date = now.Add(offset)
		return a
	}

	future := newAppt(time.Hour)
	farFuture := newAppt(90 * 24 * time.Hour)
	past := newAppt(-time.Hour)
	cancelled := newAppt(time.Hour)
	if err := cancelled.Cancel(); err != nil {
		t.Fatal(err)
	}

	r := Generate(nil, []*appointment.Appointment{future, farFuture, past, cancelled}, nil, now, 30)

	// Only scheduled appointments strictly after now count, with no
	// distance limit.
	if r.UpcomingAppointments != 2 {
		t.Errorf("upcoming = %d, want 2", r.UpcomingAppointments)
	}
}

func TestGenerateActiveTreatments(t *testing.T) {
	active, err := treatment.New(patient.ID("p1"), "Asma", "Salbutamol", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	done, err := treatment.New(patient.ID("p1"), "Gripe", "Reposo", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if err := done.Complete(); err != nil {
		t.Fatal(err)
	}

	r := Generate(nil, nil, []*treatment.Treatment{active, done}, time.Now(), 30)
	if r.ActiveTreatments != 1 {
		t.Errorf("active treatments = %d, want 1", r.ActiveTreatments)
	}
}
