package patient

import (
	"strings"
	"testing"
	"time"
)

func TestNewAge_Range(t *testing.T) {
	for _, v := range []int{0, 1, 75, 150} {
		if _, err := NewAge(v); err != nil {
			t.Errorf("NewAge(%d): unexpected error: %v", v, err)
		}
	}
	for _, v := range []int{-1, 151, 1000} {
		if _, err := NewAge(v); err == nil {
			t.Errorf("NewAge(%d): expected error", v)
		}
	}
}

func TestParseGender(t *testing.T) {
	for _, v := range []string{"Masculino", "Femenino", "Otro"} {
		g, err := ParseGender(v)
		if err != nil {
			t.Errorf("ParseGender(%q): unexpected error: %v", v, err)
		}
		if g.String() != v {
			t.Errorf("ParseGender(%q): got %q", v, g)
		}
	}
	for _, v := range []string{"", "masculino", "M", "Male"} {
		if _, err := ParseGender(v); err == nil {
			t.Errorf("ParseGender(%q): expected error", v)
		}
	}
}

func TestNewContact(t *testing.T) {
	c, err := NewContact("  555-1234  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.String() != "555-1234" {
		t.Errorf("expected trimmed contact, got %q", c)
	}
	for _, v := range []string{"", "   ", "\t\n"} {
		if _, err := NewContact(v); err == nil {
			t.Errorf("NewContact(%q): expected error", v)
		}
	}
}

func TestMedicalHistoryDisplay(t *testing.T) {
	if got := NewMedicalHistory("").Display(); got != NoMedicalHistory {
		t.Errorf("empty history should display placeholder, got %q", got)
	}
	if got := NewMedicalHistory("alergia a penicilina").Display(); got != "alergia a penicilina" {
		t.Errorf("unexpected display: %q", got)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("external-id-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "external-id-42" {
		t.Errorf("id should be wrapped verbatim, got %q", id)
	}
	if _, err := ParseID("   "); err == nil {
		t.Error("blank id should be rejected")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewPatient(t *testing.T) {
	p, err := New("Ana García", 34, "Femenino", "", "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps set at construction")
	}
	if !p.Valid() {
		t.Error("freshly created patient should be valid")
	}
}

func TestNewPatient_AggregatesViolations(t *testing.T) {
	_, err := New("", 200, "Desconocido", "", "  ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, field := range []string{"name", "age", "gender", "contact"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error should name field %q: %s", field, msg)
		}
	}
}

func TestUpdateContact_BumpsUpdatedAt(t *testing.T) {
	p, err := New("Luis Pérez", 51, "Masculino", "", "555-0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := p.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	if err := p.UpdateContact("555-9999"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.UpdatedAt.After(before) {
		t.Error("UpdatedAt should advance on contact update")
	}
	if p.Contact.String() != "555-9999" {
		t.Errorf("unexpected contact: %q", p.Contact)
	}
}

func TestUpdateContact_InvalidKeepsOld(t *testing.T) {
	p, _ := New("Luis Pérez", 51, "Masculino", "", "555-0000")
	before := p.UpdatedAt
	if err := p.UpdateContact("   "); err == nil {
		t.Fatal("expected error for blank contact")
	}
	if p.Contact.String() != "555-0000" {
		t.Error("failed update should not replace contact")
	}
	if p.UpdatedAt != before {
		t.Error("failed update should not bump UpdatedAt")
	}
}

func TestUpdatedAt_Monotonic(t *testing.T) {
	p, _ := New("Ana García", 34, "Femenino", "", "ana@example.com")
	var last time.Time
	for i := 0; i < 5; i++ {
		p.UpdateMedicalHistory("rev " + strings.Repeat("x", i))
		p.UpdateContact("c-" + strings.Repeat("y", i+1))
		if p.UpdatedAt.Before(last) {
			t.Fatal("UpdatedAt went backwards")
		}
		last = p.UpdatedAt
	}
}

func TestSearchCriteriaMatches(t *testing.T) {
	p, _ := New("María López", 45, "Femenino", "", "maria@clinic.example")
	ageMin, ageMax := 40, 50

	cases := []struct {
		name     string
		criteria SearchCriteria
		want     bool
	}{
		{"empty matches", SearchCriteria{}, true},
		{"name substring", SearchCriteria{Name: "lópez"}, true},
		{"name miss", SearchCriteria{Name: "García"}, false},
		{"age range", SearchCriteria{AgeMin: &ageMin, AgeMax: &ageMax}, true},
		{"gender exact", SearchCriteria{Gender: "Femenino"}, true},
		{"conjunctive miss", SearchCriteria{Name: "María", Gender: "Masculino"}, false},
		{"contact substring", SearchCriteria{Contact: "clinic"}, true},
	}
	for _, tc := range cases {
		if got := tc.criteria.Matches(p); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
