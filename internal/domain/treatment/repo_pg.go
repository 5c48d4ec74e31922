package treatment

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
	treatmentTable = "treatments"
	treatmentCols  = `id, patient_id, diagnosis, prescription, start_date, end_date, status, created_at, updated_at`
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Postgres-backed treatment repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanTreatment(row pgx.Row) (*Treatment, error) {
	var t Treatment
	err := row.Scan(&t.ID, &t.PatientID, &t.Diagnosis, &t.Prescription, &t.StartDate, &t.EndDate, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, fmt.Errorf("scan treatment: %w", err)
	}
	return &t, nil
}

func (r *repoPG) Save(ctx context.Context, t *Treatment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO `+treatmentTable+` (`+treatmentCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			diagnosis = EXCLUDED.diagnosis,
			prescription = EXCLUDED.prescription,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		t.ID, t.PatientID, t.Diagnosis, t.Prescription, t.StartDate, t.EndDate, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save treatment: %w", err)
	}
	return nil
}

func (r *repoPG) FindByID(ctx context.Context, id string) (*Treatment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+treatmentCols+` FROM `+treatmentTable+` WHERE id = $1`, id)
	return scanTreatment(row)
}

func (r *repoPG) FindAll(ctx context.Context) ([]*Treatment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+treatmentCols+` FROM `+treatmentTable+` ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	return collectTreatments(rows)
}

func (r *repoPG) FindByPatient(ctx context.Context, patientID patient.ID) ([]*Treatment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+treatmentCols+` FROM `+treatmentTable+` WHERE patient_id = $1 ORDER BY start_date, id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list treatments by patient: %w", err)
	}
	return collectTreatments(rows)
}

func collectTreatments(rows pgx.Rows) ([]*Treatment, error) {
	defer rows.Close()
	var treatments []*Treatment
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		treatments = append(treatments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate treatments: %w", err)
	}
	return treatments, nil
}
