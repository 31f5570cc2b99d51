package domain

// TaskStatus enumerates renewal-workflow stages for a merchant task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusScheduled  TaskStatus = "scheduled"
	StatusVisited    TaskStatus = "visited"
	StatusAuditing   TaskStatus = "auditing"
	StatusApproved   TaskStatus = "approved"
	StatusRejected   TaskStatus = "rejected"
	StatusDelivering TaskStatus = "delivering"
	StatusCompleted  TaskStatus = "completed"
)

// ValidStatus reports whether s is a known workflow stage.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusVisited, StatusAuditing,
		StatusApproved, StatusRejected, StatusDelivering, StatusCompleted:
		return true
	}
	return false
}

// Label returns the display label for a status. The switch is exhaustive so a
// new status value is a compile-surface requirement, not a silent fallback.
func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "待处理"
	case StatusScheduled:
		return "已预约"
	case StatusVisited:
		return "已上门"
	case StatusAuditing:
		return "待审核"
	case StatusApproved:
		return "审核通过"
	case StatusRejected:
		return "已驳回"
	case StatusDelivering:
		return "送达中"
	case StatusCompleted:
		return "已完成"
	}
	return string(s)
}

// InProgress reports whether s is one of the mid-pipeline stages counted as
// "办理中" in the status distribution.
func (s TaskStatus) InProgress() bool {
	switch s {
	case StatusScheduled, StatusVisited, StatusAuditing, StatusDelivering:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s. Rejected tasks never
// re-enter the pipeline.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// PortalStep maps a status to the merchant portal's four-step progress bar:
// 1 information check, 2 document upload, 3 under review, 4 done.
func (s TaskStatus) PortalStep() int {
	switch s {
	case StatusCompleted:
		return 4
	case StatusAuditing, StatusApproved, StatusDelivering:
		return 3
	}
	return 1
}

// CanTransition reports whether the workflow allows moving from s to next.
// The happy path runs pending -> scheduled -> visited -> auditing -> approved
// -> delivering -> completed, with auditing branching to rejected.
func (s TaskStatus) CanTransition(next TaskStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusScheduled
	case StatusScheduled:
		return next == StatusVisited
	case StatusVisited:
		return next == StatusAuditing
	case StatusAuditing:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusDelivering
	case StatusDelivering:
		return next == StatusCompleted
	case StatusRejected, StatusCompleted:
		return false
	}
	return false
}
