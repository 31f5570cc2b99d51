package dto

import (
	"github.com/spec-kit/renewal-service/internal/domain"
)

// StaffResponse is the roster entry exposed to admin and session views.
type StaffResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	EmployeeID     string          `json:"employee_id"`
	Area           domain.District `json:"area"`
	Phone          string          `json:"phone"`
	ActiveTasks    int             `json:"active_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
}

// HistoryEntryResponse is one processing-log line.
type HistoryEntryResponse struct {
	Date   string `json:"date"`
	Action string `json:"action"`
}

// MerchantResponse is the full task record.
type MerchantResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	LicenseNo     string                 `json:"license_no"`
	OwnerName     string                 `json:"owner_name"`
	Address       string                 `json:"address"`
	Phone         string                 `json:"phone"`
	ExpireDate    string                 `json:"expire_date"`
	DaysRemaining int                    `json:"days_remaining"`
	Status        domain.TaskStatus      `json:"status"`
	StatusLabel   string                 `json:"status_label"`
	StaffID       string                 `json:"staff_id"`
	District      domain.District        `json:"district"`
	History       []HistoryEntryResponse `json:"history"`
}

// CreateMerchantRequest is the admin single-entry form.
type CreateMerchantRequest struct {
	Name       string          `json:"name"`
	LicenseNo  string          `json:"license_no"`
	OwnerName  string          `json:"owner_name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	ExpireDate string          `json:"expire_date"`
	District   domain.District `json:"district"`
	StaffName  string          `json:"staff_name"`
}

// UpdateStatusRequest moves a task along the workflow.
type UpdateStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// StatsResponse carries the dashboard headline numbers.
type StatsResponse struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Rejected    int     `json:"rejected"`
	Rate        string  `json:"rate"`
	AvgTimeDays float64 `json:"avg_time_days"`
}

// StatusBucketResponse is one slice of the status pie.
type StatusBucketResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PerformanceRowResponse is one bar of the performance chart.
type PerformanceRowResponse struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Active    int    `json:"active"`
	Total     int    `json:"total"`
}

// PortalResponse is the merchant portal view: the session record, its derived
// progress step and the assigned officer's contact card.
type PortalResponse struct {
	Merchant MerchantResponse `json:"merchant"`
	Step     int              `json:"step"`
	Staff    *StaffContact    `json:"staff,omitempty"`
}

// StaffContact is the officer card shown to merchants.
type StaffContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewStaffResponse maps a roster record.
func NewStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		ID:             s.ID,
		Name:           s.Name,
		EmployeeID:     s.EmployeeID,
		Area:           s.Area,
		Phone:          s.Phone,
		ActiveTasks:    s.ActiveTasks,
		CompletedTasks: s.CompletedTasks,
	}
}

// NewMerchantResponse maps a task record.
func NewMerchantResponse(m *domain.Merchant) MerchantResponse {
	history := make([]HistoryEntryResponse, 0, len(m.History))
	for _, h := range m.History {
		history = append(history, HistoryEntryResponse{Date: h.Date, Action: h.Action})
	}
	return MerchantResponse{
		ID:            m.ID,
		Name:          m.Name,
		LicenseNo:     m.LicenseNo,
		OwnerName:     m.OwnerName,
		Address:       m.Address,
		Phone:         m.Phone,
		ExpireDate:    m.ExpireDate,
		DaysRemaining: m.DaysRemaining,
		Status:        m.Status,
		StatusLabel:   m.Status.Label(),
		StaffID:       m.StaffID,
		District:      m.District,
		History:       history,
	}
}

// NewMerchantResponses maps a slice of task records.
func NewMerchantResponses(list []domain.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(list))
	for i := range list {
		out = append(out, NewMerchantResponse(&list[i]))
	}
	return out
}
