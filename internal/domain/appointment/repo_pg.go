package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saludtotal/clinic/internal/domain/patient"
	"github.com/saludtotal/clinic/pkg/domainerr"
)

const (
	appointmentTable = "appointments"
	appointmentCols  = `id, patient_id, date, doctor_name, reason, status, notes, created_at, updated_at`
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Postgres-backed appointment repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.Date, &a.DoctorName, &a.Reason, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}

func (r *repoPG) Save(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO `+appointmentTable+` (`+appointmentCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			doctor_name = EXCLUDED.doctor_name,
			reason = EXCLUDED.reason,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at`,
		a.ID, a.PatientID, a.Date, a.DoctorName, a.Reason, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

func (r *repoPG) FindByID(ctx context.Context, id string) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentCols+` FROM `+appointmentTable+` WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *repoPG) FindAll(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentCols+` FROM `+appointmentTable+` ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return collectAppointments(rows)
}

func (r *repoPG) FindByPatient(ctx context.Context, patientID patient.ID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentCols+` FROM `+appointmentTable+` WHERE patient_id = $1 ORDER BY date, id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by patient: %w", err)
	}
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var appointments []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appointments, nil
}
