package service

import (
	"fmt"
	"strings"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/repository"
)

// avgTurnaroundDays is a fixed display placeholder; the dataset carries no
// per-task processing timestamps to derive a real value from.
const avgTurnaroundDays = 3.5

// DashboardFilter is the only input driving dashboard recomputation.
// District takes a district name or the "All" sentinel; Month takes a
// "YYYY-MM" value or "All".
type DashboardFilter struct {
	District string
	Month    string
}

func (f DashboardFilter) allDistricts() bool {
	return f.District == "" || f.District == domain.DistrictAll
}

func (f DashboardFilter) allMonths() bool {
	return f.Month == "" || f.Month == domain.DistrictAll
}

// DashboardStats are the headline numbers of the admin dashboard.
type DashboardStats struct {
	Total     int
	Completed int
	Rejected  int
	// Rate is the completion percentage formatted to one decimal, or the
	// bare "0" when the filtered set is empty.
	Rate        string
	AvgTimeDays float64
}

// StatusBucket is one non-empty slice of the status distribution.
type StatusBucket struct {
	Name  string
	Value int
}

// PerformanceRow is one bar of the performance comparison. With a district
// selected rows are per staff member (completed vs in-flight); city-wide they
// are per district (completed vs total).
type PerformanceRow struct {
	Name      string
	Completed int
	Active    int
	Total     int
}

// DashboardService computes the read-only aggregate views behind the admin
// screens. Every method takes a fresh snapshot and derives new values; the
// source collections are never mutated.
type DashboardService struct {
	merchants repository.MerchantRepository
	staff     repository.StaffRepository
}

// DashboardDependencies bundles repositories.
type DashboardDependencies struct {
	MerchantRepo repository.MerchantRepository
	StaffRepo    repository.StaffRepository
}

// NewDashboardService creates the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{merchants: deps.MerchantRepo, staff: deps.StaffRepo}
}

// Merchants returns the merchants matching the filter, in generation order.
func (s *DashboardService) Merchants(filter DashboardFilter) []domain.Merchant {
	return filterMerchants(s.merchants.List(), filter)
}

// StaffList returns the staff roster for a district, or all of it.
func (s *DashboardService) StaffList(district string) []domain.Staff {
	return s.staff.List(district)
}

// Stats aggregates the filtered subset into the headline numbers.
func (s *DashboardService) Stats(filter DashboardFilter) DashboardStats {
	return aggregateStats(s.Merchants(filter))
}

// StatusDistribution partitions the filtered subset into the four display
// buckets, omitting empty ones.
func (s *DashboardService) StatusDistribution(filter DashboardFilter) []StatusBucket {
	return statusDistribution(s.Merchants(filter))
}

// Performance groups completion numbers for the bar chart. A selected
// district compares its staff against the full merchant collection; "All"
// compares districts against the month-filtered subset.
func (s *DashboardService) Performance(filter DashboardFilter) []PerformanceRow {
	if !filter.allDistricts() {
		return staffPerformance(s.staff.List(filter.District), s.merchants.List())
	}
	return districtPerformance(s.Merchants(filter))
}

func filterMerchants(all []domain.Merchant, filter DashboardFilter) []domain.Merchant {
	out := make([]domain.Merchant, 0, len(all))
	for _, m := range all {
		if !filter.allDistricts() && string(m.District) != filter.District {
			continue
		}
		// month matching is a plain prefix test on the YYYY-MM portion
		if !filter.allMonths() && !strings.HasPrefix(m.ExpireDate, filter.Month) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func aggregateStats(subset []domain.Merchant) DashboardStats {
	stats := DashboardStats{AvgTimeDays: avgTurnaroundDays}
	for _, m := range subset {
		stats.Total++
		switch m.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusRejected:
			stats.Rejected++
		}
	}
	if stats.Total == 0 {
		stats.Rate = "0"
	} else {
		stats.Rate = fmt.Sprintf("%.1f", float64(stats.Completed)/float64(stats.Total)*100)
	}
	return stats
}

func statusDistribution(subset []domain.Merchant) []StatusBucket {
	var completed, inProgress, rejected, pending int
	for _, m := range subset {
		switch {
		case m.Status == domain.StatusCompleted:
			completed++
		case m.Status.InProgress():
			inProgress++
		case m.Status == domain.StatusRejected:
			rejected++
		case m.Status == domain.StatusPending:
			pending++
		}
	}

	var out []StatusBucket
	for _, b := range []StatusBucket{
		{Name: "已完成", Value: completed},
		{Name: "办理中", Value: inProgress},
		{Name: "已驳回", Value: rejected},
		{Name: "待处理", Value: pending},
	} {
		if b.Value > 0 {
			out = append(out, b)
		}
	}
	return out
}

func staffPerformance(roster []domain.Staff, all []domain.Merchant) []PerformanceRow {
	type counts struct{ completed, active int }
	byStaff := make(map[string]counts)
	for _, m := range all {
		c := byStaff[m.StaffID]
		if m.Status == domain.StatusCompleted {
			c.completed++
		} else {
			c.active++
		}
		byStaff[m.StaffID] = c
	}

	out := make([]PerformanceRow, 0, len(roster))
	for _, s := range roster {
		c := byStaff[s.ID]
		out = append(out, PerformanceRow{
			Name:      s.Name,
			Completed: c.completed,
			Active:    c.active,
			Total:     c.completed + c.active,
		})
	}
	return out
}

func districtPerformance(subset []domain.Merchant) []PerformanceRow {
	type counts struct{ completed, total int }
	byDistrict := make(map[domain.District]counts)
	for _, m := range subset {
		c := byDistrict[m.District]
		c.total++
		if m.Status == domain.StatusCompleted {
			c.completed++
		}
		byDistrict[m.District] = c
	}

	districts := domain.Districts()
	out := make([]PerformanceRow, 0, len(districts))
	for _, d := range districts {
		c := byDistrict[d]
		out = append(out, PerformanceRow{
			Name:      string(d),
			Completed: c.completed,
			Total:     c.total,
		})
	}
	return out
}
