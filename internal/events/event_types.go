package events

import (
	"time"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTaskStatusChanged EventType = "task_status_changed"
	EventTaskAssigned      EventType = "task_assigned"
	EventTaskCompleted     EventType = "task_completed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type    domain.SubjectType `json:"type"`
	StaffID *string            `json:"staff_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	MerchantID string      `json:"merchant_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// TaskStatusChangedPayload payload.
type TaskStatusChangedPayload struct {
	OldStatus domain.TaskStatus `json:"old_status"`
	NewStatus domain.TaskStatus `json:"new_status"`
}

// TaskAssignedPayload payload.
type TaskAssignedPayload struct {
	StaffID  string          `json:"staff_id"`
	District domain.District `json:"district"`
}

// TaskCompletedPayload payload.
type TaskCompletedPayload struct {
	LicenseNo  string `json:"license_no"`
	ExpireDate string `json:"expire_date"`
}
