package treatment

import "time"

// DTO is the flat JSON shape returned by the API.
type DTO struct {
	ID           string     `json:"id"`
	PatientID    string     `json:"patient_id"`
	Diagnosis    string     `json:"diagnosis"`
	Prescription string     `json:"prescription"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToDTO maps the entity to its API representation.
func ToDTO(t *Treatment) DTO {
	return DTO{
		ID:           t.ID,
		PatientID:    string(t.PatientID),
		Diagnosis:    string(t.Diagnosis),
		Prescription: string(t.Prescription),
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToDTOs maps a slice, never returning nil.
func ToDTOs(treatments []*Treatment) []DTO {
	dtos := make([]DTO, 0, len(treatments))
	for _, t := range treatments {
		dtos = append(dtos, ToDTO(t))
	}
	return dtos
}
