package patient

import (
	"context"
	"errors"

	"github.com/saludtotal/clinic/pkg/domainerr"
)

// Service validates and persists patients. It holds no state beyond
// its repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the supplied fields, builds a patient with a fresh
// identifier, and persists it.
func (s *Service) Create(ctx context.Context, name string, age int, gender, medicalHistory, contact string) (*Patient, error) {
	p, err := New(name, age, gender, medicalHistory, contact)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get resolves a patient by its external identifier text.
func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, pid)
}

// List returns all patients, ordered by name.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.FindAll(ctx)
}

// Search applies conjunctive criteria; empty criteria return everything.
func (s *Service) Search(ctx context.Context, criteria SearchCriteria) ([]*Patient, error) {
	if criteria.Empty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, criteria)
}

// UpdateMedicalHistory replaces a patient's medical history and
// persists the mutated entity.
func (s *Service) UpdateMedicalHistory(ctx context.Context, id, newHistory string) (*Patient, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.UpdateMedicalHistory(newHistory); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateContact replaces a patient's contact and persists the mutated
// entity.
func (s *Service) UpdateContact(ctx context.Context, id, newContact string) (*Patient, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.UpdateContact(newContact); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a patient from the store.
func (s *Service) Delete(ctx context.Context, id string) error {
	pid, err := ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, pid)
}

// Exists reports whether a patient with the given identifier is stored.
// Appointment and treatment creation use it to enforce their reference.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainerr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Validate re-evaluates the aggregate validity predicate without
// raising.
func Validate(p *Patient) bool {
	return p != nil && p.Valid()
}
