package appointment

import "time"

// DTO is the flat JSON shape returned by the API.
type DTO struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Date       time.Time `json:"date"`
	DoctorName string    `json:"doctor_name"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToDTO maps the entity to its API representation.
func ToDTO(a *Appointment) DTO {
	return DTO{
		ID:         a.ID,
		PatientID:  string(a.PatientID),
		Date:       a.Date,
		DoctorName: a.DoctorName,
		Reason:     a.Reason,
		Status:     string(a.Status),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToDTOs maps a slice, never returning nil.
func ToDTOs(appointments []*Appointment) []DTO {
	dtos := make([]DTO, 0, len(appointments))
	for _, a := range appointments {
		dtos = append(dtos, ToDTO(a))
	}
	return dtos
}
