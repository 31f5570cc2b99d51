package repository

import (
	"sync"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// StaffRepository provides read access to the staff roster.
type StaffRepository interface {
	GetByID(id string) (*domain.Staff, error)
	// GetByName returns the first roster entry with an exact name match.
	GetByName(name string) (*domain.Staff, error)
	// FirstInArea returns the first roster entry for a district, in
	// generation order.
	FirstInArea(area domain.District) (*domain.Staff, error)
	// List returns staff filtered by district; the DistrictAll sentinel (or
	// empty string) lifts the restriction. Entries keep generation order.
	List(area string) []domain.Staff
}

type staffRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Staff
	order []string
}

// NewStaffRepository builds the store from the generated roster.
func NewStaffRepository(roster []domain.Staff) StaffRepository {
	r := &staffRepository{byID: make(map[string]*domain.Staff, len(roster))}
	for i := range roster {
		s := roster[i]
		r.byID[s.ID] = &s
		r.order = append(r.order, s.ID)
	}
	return r
}

func (r *staffRepository) GetByID(id string) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *s
	return &out, nil
}

func (r *staffRepository) GetByName(name string) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if s := r.byID[id]; s.Name == name {
			out := *s
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *staffRepository) FirstInArea(area domain.District) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if s := r.byID[id]; s.Area == area {
			out := *s
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *staffRepository) List(area string) []domain.Staff {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Staff, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if area != "" && area != domain.DistrictAll && string(s.Area) != area {
			continue
		}
		out = append(out, *s)
	}
	return out
}
