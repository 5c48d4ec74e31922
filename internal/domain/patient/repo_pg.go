package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saludtotal/clinic/pkg/domainerr"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns the Postgres-backed patient repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const (
	patientTable = "patients"
	patientCols  = `id, name, age, gender, medical_history, contact, created_at, updated_at`
)

func scanPatient(row pgx.Row) (*Patient, error) {
	var (
		id, name, gender, history, contact string
		age                                int
		createdAt, updatedAt               time.Time
	)
	if err := row.Scan(&id, &name, &age, &gender, &history, &contact, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, err
	}
	return &Patient{
		ID:             ID(id),
		Name:           name,
		Age:            Age(age),
		Gender:         Gender(gender),
		MedicalHistory: MedicalHistory(history),
		Contact:        Contact(contact),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func (r *repoPG) Save(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO `+patientTable+` (`+patientCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			name=EXCLUDED.name, age=EXCLUDED.age, gender=EXCLUDED.gender,
			medical_history=EXCLUDED.medical_history, contact=EXCLUDED.contact,
			updated_at=EXCLUDED.updated_at`,
		p.ID.String(), p.Name, p.Age.Int(), p.Gender.String(),
		p.MedicalHistory.String(), p.Contact.String(), p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *repoPG) FindByID(ctx context.Context, id ID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM `+patientTable+` WHERE id = $1`, id.String()))
}

func (r *repoPG) FindAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM `+patientTable+` ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) Search(ctx context.Context, criteria SearchCriteria) ([]*Patient, error) {
	query := `SELECT ` + patientCols + ` FROM ` + patientTable + ` WHERE 1=1`
	var args []interface{}
	idx := 1

	if criteria.Name != "" {
		query += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, idx)
		args = append(args, criteria.Name)
		idx++
	}
	if criteria.AgeMin != nil {
		query += fmt.Sprintf(` AND age >= $%d`, idx)
		args = append(args, *criteria.AgeMin)
		idx++
	}
	if criteria.AgeMax != nil {
		query += fmt.Sprintf(` AND age <= $%d`, idx)
		args = append(args, *criteria.AgeMax)
		idx++
	}
	if criteria.Gender != "" {
		query += fmt.Sprintf(` AND gender = $%d`, idx)
		args = append(args, criteria.Gender)
		idx++
	}
	if criteria.Contact != "" {
		query += fmt.Sprintf(` AND contact ILIKE '%%' || $%d || '%%'`, idx)
		args = append(args, criteria.Contact)
		idx++
	}
	query += ` ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) Delete(ctx context.Context, id ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+patientTable+` WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainerr.ErrNotFound
	}
	return nil
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
