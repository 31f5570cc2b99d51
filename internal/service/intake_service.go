package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/events"
	"github.com/spec-kit/renewal-service/internal/repository"
	apperrors "github.com/spec-kit/renewal-service/pkg/util"
)

// IntakeService handles single-merchant entry from the admin management
// screen: validation, staff assignment and insertion into the session store.
type IntakeService struct {
	merchants  repository.MerchantRepository
	staff      repository.StaffRepository
	dispatcher events.Dispatcher
}

// IntakeDependencies bundles what the service needs.
type IntakeDependencies struct {
	MerchantRepo repository.MerchantRepository
	StaffRepo    repository.StaffRepository
	Dispatcher   events.Dispatcher
}

// NewIntakeService creates the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	return &IntakeService{
		merchants:  deps.MerchantRepo,
		staff:      deps.StaffRepo,
		dispatcher: deps.Dispatcher,
	}
}

// IntakeInput describes one merchant record to enter. StaffName optionally
// pins the assignee by exact name; left empty, the least-loaded staff member
// of the district takes the task.
type IntakeInput struct {
	Name       string
	LicenseNo  string
	OwnerName  string
	Address    string
	Phone      string
	ExpireDate string
	District   domain.District
	StaffName  string
}

// CreateMerchant validates the input, assigns a staff member and stores the
// new pending task.
func (s *IntakeService) CreateMerchant(ctx context.Context, input IntakeInput) (*domain.Merchant, error) {
	if input.Name == "" || input.LicenseNo == "" {
		return nil, apperrors.NewValidationError("name and license number required", nil)
	}
	if !domain.ValidDistrict(input.District) {
		return nil, apperrors.NewValidationError("unknown district", map[string]any{"district": input.District})
	}
	days, err := domain.DaysUntil(input.ExpireDate, domain.Clock())
	if err != nil {
		return nil, apperrors.NewValidationError("expire date must use YYYY-MM-DD", map[string]any{"expire_date": input.ExpireDate})
	}

	assignee, err := s.resolveAssignee(input)
	if err != nil {
		return nil, err
	}

	merchant := &domain.Merchant{
		ID:            "m_" + uuid.NewString(),
		Name:          input.Name,
		LicenseNo:     input.LicenseNo,
		OwnerName:     input.OwnerName,
		Address:       input.Address,
		Phone:         input.Phone,
		ExpireDate:    input.ExpireDate,
		DaysRemaining: days,
		Status:        domain.StatusPending,
		StaffID:       assignee.ID,
		District:      input.District,
		History: []domain.HistoryEntry{{
			Date:   domain.CurrentSystemDate,
			Action: "已录入",
		}},
	}
	if err := s.merchants.Create(merchant); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewConflict("license number already registered", map[string]any{"license_no": input.LicenseNo})
		}
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTaskAssigned,
			MerchantID: merchant.ID,
			Actor:      events.Actor{Type: domain.SubjectTypeAdmin},
			Timestamp:  time.Now(),
			Payload: events.TaskAssignedPayload{
				StaffID:  assignee.ID,
				District: merchant.District,
			},
		})
	}
	return merchant, nil
}

func (s *IntakeService) resolveAssignee(input IntakeInput) (*domain.Staff, error) {
	if input.StaffName != "" {
		staff, err := s.staff.GetByName(input.StaffName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NewNotFound("staff", map[string]any{"name": input.StaffName})
			}
			return nil, apperrors.MapError(err)
		}
		if staff.Area != input.District {
			return nil, apperrors.NewConflict("staff outside merchant district", map[string]any{
				"staff_area": staff.Area,
				"district":   input.District,
			})
		}
		return staff, nil
	}
	return s.leastLoaded(input.District)
}

// leastLoaded picks the district staff member with the fewest open tasks,
// breaking ties by roster order.
func (s *IntakeService) leastLoaded(district domain.District) (*domain.Staff, error) {
	roster := s.staff.List(string(district))
	if len(roster) == 0 {
		return nil, apperrors.NewConflict("no staff in district", map[string]any{"district": district})
	}

	open := make(map[string]int)
	for _, m := range s.merchants.List() {
		if m.Status != domain.StatusCompleted {
			open[m.StaffID]++
		}
	}

	best := roster[0]
	for _, candidate := range roster[1:] {
		if open[candidate.ID] < open[best.ID] {
			best = candidate
		}
	}
	return &best, nil
}
