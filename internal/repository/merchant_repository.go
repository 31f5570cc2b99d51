package repository

import (
	"sync"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// MerchantRepository stores the merchant task collection. Reads hand out
// copies; the only writes are task status updates and admin intake.
type MerchantRepository interface {
	GetByID(id string) (*domain.Merchant, error)
	GetByLicenseNo(licenseNo string) (*domain.Merchant, error)
	// List returns a snapshot of the full collection in generation order.
	List() []domain.Merchant
	// ListByStaff returns the tasks assigned to one staff member.
	ListByStaff(staffID string) []domain.Merchant
	// Create appends a new record. Fails with ErrConflict on duplicate id or
	// license number.
	Create(m *domain.Merchant) error
	// SetStatus moves a task to a new status and appends a history entry.
	// The transition must already be validated by the caller.
	SetStatus(id string, status domain.TaskStatus, entry domain.HistoryEntry) (*domain.Merchant, error)
}

type merchantRepository struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Merchant
	byLicense map[string]string
	order     []string
}

// NewMerchantRepository builds the store from the generated collection.
func NewMerchantRepository(merchants []domain.Merchant) MerchantRepository {
	r := &merchantRepository{
		byID:      make(map[string]*domain.Merchant, len(merchants)),
		byLicense: make(map[string]string, len(merchants)),
	}
	for i := range merchants {
		m := merchants[i].Clone()
		r.byID[m.ID] = &m
		r.byLicense[m.LicenseNo] = m.ID
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *merchantRepository) GetByID(id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := m.Clone()
	return &out, nil
}

func (r *merchantRepository) GetByLicenseNo(licenseNo string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byLicense[licenseNo]
	if !ok {
		return nil, ErrNotFound
	}
	out := r.byID[id].Clone()
	return &out, nil
}

func (r *merchantRepository) List() []domain.Merchant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Merchant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func (r *merchantRepository) ListByStaff(staffID string) []domain.Merchant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Merchant
	for _, id := range r.order {
		if m := r.byID[id]; m.StaffID == staffID {
			out = append(out, m.Clone())
		}
	}
	return out
}

func (r *merchantRepository) Create(m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[m.ID]; exists {
		return ErrConflict
	}
	if _, exists := r.byLicense[m.LicenseNo]; exists {
		return ErrConflict
	}
	stored := m.Clone()
	r.byID[stored.ID] = &stored
	r.byLicense[stored.LicenseNo] = stored.ID
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *merchantRepository) SetStatus(id string, status domain.TaskStatus, entry domain.HistoryEntry) (*domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.Status = status
	m.History = append(m.History, entry)
	out := m.Clone()
	return &out, nil
}
