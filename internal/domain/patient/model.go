// Package patient holds the patient aggregate: its value objects, the
// entity itself, the domain service, and the Postgres repository.
package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saludtotal/clinic/pkg/domainerr"
)

// ID is the opaque unique identifier of a patient. Generated on
// creation, parsed verbatim when supplied externally.
type ID string

// NewID generates a fresh unique patient identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID wraps externally supplied text as an ID. The text is taken
// verbatim; only blank input is rejected.
func ParseID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return "", domainerr.Invalid("patient_id", "must not be empty")
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }

// Age bounds, inclusive.
const (
	MinAge = 0
	MaxAge = 150
)

// Age is a validated patient age.
type Age int

// NewAge validates that the age is within [0,150].
func NewAge(v int) (Age, error) {
	if v < MinAge || v > MaxAge {
		return 0, domainerr.Invalid("age", "must be between 0 and 150")
	}
	return Age(v), nil
}

func (a Age) Int() int { return int(a) }

// Valid reports whether the age is within the allowed range.
func (a Age) Valid() bool { return a >= MinAge && a <= MaxAge }

// Gender is one of a fixed closed set of values.
type Gender string

const (
	GenderMale   Gender = "Masculino"
	GenderFemale Gender = "Femenino"
	GenderOther  Gender = "Otro"
)

// Genders lists every allowed gender value, in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender validates that the value belongs to the closed set.
func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if !g.Valid() {
		return "", domainerr.Invalid("gender", "must be one of Masculino, Femenino, Otro")
	}
	return g, nil
}

// Valid reports whether the gender belongs to the closed set.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func (g Gender) String() string { return string(g) }

// Contact is a non-blank contact string (phone, email, free-form).
type Contact string

// NewContact trims and validates contact information.
func NewContact(s string) (Contact, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", domainerr.Invalid("contact", "must not be empty")
	}
	return Contact(trimmed), nil
}

func (c Contact) String() string { return string(c) }

// Valid reports whether the contact is non-blank.
func (c Contact) Valid() bool { return strings.TrimSpace(string(c)) != "" }

// NoMedicalHistory is displayed in place of an empty history.
const NoMedicalHistory = "Sin historial médico"

// MedicalHistory is optional free text. Any value is valid, including
// the empty string.
type MedicalHistory string

// NewMedicalHistory wraps free-text history. It never fails.
func NewMedicalHistory(s string) MedicalHistory {
	return MedicalHistory(s)
}

func (m MedicalHistory) String() string { return string(m) }

// Display returns the history text, or the no-history placeholder when
// empty.
func (m MedicalHistory) Display() string {
	if m == "" {
		return NoMedicalHistory
	}
	return string(m)
}

// Patient is the aggregate root. Identity is assigned once at creation
// and never reassigned; UpdatedAt is bumped on every mutation.
type Patient struct {
	ID             ID
	Name           string
	Age            Age
	Gender         Gender
	MedicalHistory MedicalHistory
	Contact        Contact
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New builds a patient from primitive values, validating every field.
// Field failures are aggregated into a single ValidationError naming
// each offending field. The aggregate predicate is re-checked after
// construction even though the per-field checks make it redundant.
func New(name string, age int, gender, medicalHistory, contact string) (*Patient, error) {
	ve := &domainerr.ValidationError{}

	if strings.TrimSpace(name) == "" {
		ve.Add("name", "must not be empty")
	}
	ageVO, err := NewAge(age)
	if err != nil {
		ve.Merge(err)
	}
	genderVO, err := ParseGender(gender)
	if err != nil {
		ve.Merge(err)
	}
	contactVO, err := NewContact(contact)
	if err != nil {
		ve.Merge(err)
	}
	if !ve.Empty() {
		return nil, ve
	}

	now := time.Now()
	p := &Patient{
		ID:             NewID(),
		Name:           name,
		Age:            ageVO,
		Gender:         genderVO,
		MedicalHistory: NewMedicalHistory(medicalHistory),
		Contact:        contactVO,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if !p.Valid() {
		return nil, domainerr.Invalid("patient", "aggregate state is invalid")
	}
	return p, nil
}

// Valid is the aggregate validity predicate: name present and every
// value object well-formed. Medical history is always valid.
func (p *Patient) Valid() bool {
	return p.Name != "" && p.Age.Valid() && p.Gender.Valid() && p.Contact.Valid()
}

// UpdateMedicalHistory replaces the history and bumps UpdatedAt.
func (p *Patient) UpdateMedicalHistory(newHistory string) error {
	p.MedicalHistory = NewMedicalHistory(newHistory)
	p.touch()
	return nil
}

// UpdateContact validates and replaces the contact, bumping UpdatedAt.
func (p *Patient) UpdateContact(newContact string) error {
	c, err := NewContact(newContact)
	if err != nil {
		return err
	}
	p.Contact = c
	p.touch()
	return nil
}

// touch advances UpdatedAt, keeping it monotonically non-decreasing.
func (p *Patient) touch() {
	if now := time.Now(); now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}
