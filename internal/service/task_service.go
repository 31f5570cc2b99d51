package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/events"
	"github.com/spec-kit/renewal-service/internal/repository"
	apperrors "github.com/spec-kit/renewal-service/pkg/util"
)

// urgentWindowDays marks tasks expiring within a week as urgent.
const urgentWindowDays = 7

// TaskService drives the staff workbench: task lists, detail access and the
// status workflow. Status updates persist for the session.
type TaskService struct {
	merchants  repository.MerchantRepository
	dispatcher events.Dispatcher
}

// TaskDependencies bundles what the service needs.
type TaskDependencies struct {
	MerchantRepo repository.MerchantRepository
	Dispatcher   events.Dispatcher
}

// NewTaskService creates the service.
func NewTaskService(deps TaskDependencies) *TaskService {
	return &TaskService{merchants: deps.MerchantRepo, dispatcher: deps.Dispatcher}
}

// ActiveTasks returns a staff member's non-completed tasks sorted ascending
// by days remaining, plus the urgent sub-list (<= 7 days, same order).
func (s *TaskService) ActiveTasks(staffID string) (active, urgent []domain.Merchant) {
	for _, m := range s.merchants.ListByStaff(staffID) {
		if m.Status != domain.StatusCompleted {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DaysRemaining < active[j].DaysRemaining
	})
	for _, m := range active {
		if m.DaysRemaining <= urgentWindowDays {
			urgent = append(urgent, m)
		}
	}
	return active, urgent
}

// CompletedTasks returns a staff member's completed tasks, most recently
// expired first.
func (s *TaskService) CompletedTasks(staffID string) []domain.Merchant {
	var out []domain.Merchant
	for _, m := range s.merchants.ListByStaff(staffID) {
		if m.Status == domain.StatusCompleted {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpireDate > out[j].ExpireDate
	})
	return out
}

// GetTask returns one task, scoped to the acting staff member.
func (s *TaskService) GetTask(actor *domain.Staff, id string) (*domain.Merchant, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("staff required")
	}
	task, err := s.merchants.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("task", map[string]any{"task_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if task.StaffID != actor.ID {
		return nil, apperrors.NewForbidden("task belongs to another staff member")
	}
	return task, nil
}

// UpdateStatus moves a task along the workflow. The transition is validated
// against the allowed edges; the update is applied to the session store and a
// dated history entry is appended.
func (s *TaskService) UpdateStatus(ctx context.Context, actor *domain.Staff, id string, next domain.TaskStatus) (*domain.Merchant, error) {
	task, err := s.GetTask(actor, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidStatus(next) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": next})
	}
	if !task.Status.CanTransition(next) {
		return nil, apperrors.NewConflict("transition not allowed", map[string]any{
			"from": task.Status,
			"to":   next,
		})
	}

	updated, err := s.merchants.SetStatus(id, next, domain.HistoryEntry{
		Date:   domain.CurrentSystemDate,
		Action: next.Label(),
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor.ID, events.Event{
		Type:       events.EventTaskStatusChanged,
		MerchantID: updated.ID,
		Payload: events.TaskStatusChangedPayload{
			OldStatus: task.Status,
			NewStatus: next,
		},
	})
	if next == domain.StatusCompleted {
		s.publish(ctx, actor.ID, events.Event{
			Type:       events.EventTaskCompleted,
			MerchantID: updated.ID,
			Payload: events.TaskCompletedPayload{
				LicenseNo:  updated.LicenseNo,
				ExpireDate: updated.ExpireDate,
			},
		})
	}
	return updated, nil
}

func (s *TaskService) publish(ctx context.Context, staffID string, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Actor = events.Actor{Type: domain.SubjectTypeStaff, StaffID: &staffID}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
