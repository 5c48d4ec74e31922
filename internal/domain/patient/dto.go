package patient

import (
	"strings"
	"time"
)

// DTO is the flat transfer record mirroring a Patient for exchange
// across the API boundary.
type DTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	MedicalHistory string    `json:"medical_history"`
	Contact        string    `json:"contact"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToDTO flattens the entity. Medical history keeps its display form so
// empty histories render as the placeholder text.
func (p *Patient) ToDTO() DTO {
	return DTO{
		ID:             p.ID.String(),
		Name:           p.Name,
		Age:            p.Age.Int(),
		Gender:         p.Gender.String(),
		MedicalHistory: p.MedicalHistory.Display(),
		Contact:        p.Contact.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToDTOs flattens a collection, preserving order.
func ToDTOs(patients []*Patient) []DTO {
	dtos := make([]DTO, len(patients))
	for i, p := range patients {
		dtos[i] = p.ToDTO()
	}
	return dtos
}

// SearchCriteria narrows a patient search. Nil/zero fields impose no
// constraint; combined criteria are conjunctive.
type SearchCriteria struct {
	Name    string `json:"name,omitempty"`    // substring, case-insensitive
	AgeMin  *int   `json:"age_min,omitempty"` // inclusive
	AgeMax  *int   `json:"age_max,omitempty"` // inclusive
	Gender  string `json:"gender,omitempty"`  // exact match
	Contact string `json:"contact,omitempty"` // substring, case-insensitive
}

// Empty reports whether no criterion is set.
func (c SearchCriteria) Empty() bool {
	return c.Name == "" && c.AgeMin == nil && c.AgeMax == nil && c.Gender == "" && c.Contact == ""
}

// Matches applies the conjunctive criteria to a patient. Used by the
// in-memory repository in tests and mirrored by the SQL in repo_pg.
func (c SearchCriteria) Matches(p *Patient) bool {
	if c.Name != "" && !containsFold(p.Name, c.Name) {
		return false
	}
	if c.AgeMin != nil && p.Age.Int() < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && p.Age.Int() > *c.AgeMax {
		return false
	}
	if c.Gender != "" && p.Gender.String() != c.Gender {
		return false
	}
	if c.Contact != "" && !containsFold(p.Contact.String(), c.Contact) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
