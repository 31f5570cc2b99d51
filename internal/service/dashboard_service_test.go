package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/repository"
)

func mkMerchant(id string, district domain.District, status domain.TaskStatus, expireDate, staffID string) domain.Merchant {
	return domain.Merchant{
		ID:         id,
		Name:       "测试商铺" + id,
		LicenseNo:  "4107" + id,
		OwnerName:  "张三",
		Address:    "新乡市" + string(district) + "区测试路1号",
		Phone:      "13800000000",
		ExpireDate: expireDate,
		Status:     status,
		StaffID:    staffID,
		District:   district,
		History:    []domain.HistoryEntry{},
	}
}

func newDashboard(staff []domain.Staff, merchants []domain.Merchant) *DashboardService {
	return NewDashboardService(DashboardDependencies{
		MerchantRepo: repository.NewMerchantRepository(merchants),
		StaffRepo:    repository.NewStaffRepository(staff),
	})
}

func TestStatsRateFormatting(t *testing.T) {
	var merchants []domain.Merchant
	for i := 0; i < 10; i++ {
		status := domain.StatusPending
		if i < 3 {
			status = domain.StatusCompleted
		}
		merchants = append(merchants, mkMerchant(string(rune('a'+i)), domain.DistrictMuye, status, "2025-06-10", "s1"))
	}
	svc := newDashboard(nil, merchants)

	stats := svc.Stats(DashboardFilter{District: "All", Month: "All"})
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 3, stats.Completed)
	assert.Equal(t, "30.0", stats.Rate)
	assert.Equal(t, 3.5, stats.AvgTimeDays)
}

func TestStatsEmptySubsetRate(t *testing.T) {
	svc := newDashboard(nil, nil)

	stats := svc.Stats(DashboardFilter{})
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0", stats.Rate)
}

func TestMerchantsMonthFilterIsPrefixMatch(t *testing.T) {
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusCompleted, "2025-06-01", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusCompleted, "2025-06-28", "s1"),
		mkMerchant("c", domain.DistrictMuye, domain.StatusCompleted, "2025-07-01", "s1"),
		mkMerchant("d", domain.DistrictHongqi, domain.StatusPending, "2026-01-20", "s2"),
	}
	svc := newDashboard(nil, merchants)

	june := svc.Merchants(DashboardFilter{District: "All", Month: "2025-06"})
	require.Len(t, june, 2)
	assert.Equal(t, "a", june[0].ID)
	assert.Equal(t, "b", june[1].ID)

	all := svc.Merchants(DashboardFilter{District: "All", Month: "All"})
	assert.Len(t, all, 4)

	muyeOnly := svc.Merchants(DashboardFilter{District: string(domain.DistrictMuye), Month: "All"})
	assert.Len(t, muyeOnly, 3)
}

func TestStatusDistributionOmitsEmptyBuckets(t *testing.T) {
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusCompleted, "2025-06-01", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusCompleted, "2025-06-02", "s1"),
		mkMerchant("c", domain.DistrictMuye, domain.StatusPending, "2026-01-20", "s1"),
	}
	svc := newDashboard(nil, merchants)

	buckets := svc.StatusDistribution(DashboardFilter{})
	require.Len(t, buckets, 2)
	assert.Equal(t, StatusBucket{Name: "已完成", Value: 2}, buckets[0])
	assert.Equal(t, StatusBucket{Name: "待处理", Value: 1}, buckets[1])
}

func TestStatusDistributionGroupsMidPipelineStatuses(t *testing.T) {
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusScheduled, "2026-01-20", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusVisited, "2026-01-21", "s1"),
		mkMerchant("c", domain.DistrictMuye, domain.StatusAuditing, "2026-01-22", "s1"),
		mkMerchant("d", domain.DistrictMuye, domain.StatusDelivering, "2026-01-23", "s1"),
		mkMerchant("e", domain.DistrictMuye, domain.StatusRejected, "2026-01-24", "s1"),
	}
	svc := newDashboard(nil, merchants)

	buckets := svc.StatusDistribution(DashboardFilter{})
	require.Len(t, buckets, 2)
	assert.Equal(t, StatusBucket{Name: "办理中", Value: 4}, buckets[0])
	assert.Equal(t, StatusBucket{Name: "已驳回", Value: 1}, buckets[1])
}

func TestPerformancePerStaffIgnoresMonthFilter(t *testing.T) {
	staff := []domain.Staff{
		{ID: "s1", Name: "李明", Area: domain.DistrictMuye},
		{ID: "s2", Name: "王芳", Area: domain.DistrictMuye},
		{ID: "s3", Name: "赵强", Area: domain.DistrictHongqi},
	}
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusCompleted, "2025-06-01", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusCompleted, "2025-07-01", "s1"),
		mkMerchant("c", domain.DistrictMuye, domain.StatusPending, "2026-01-20", "s2"),
		mkMerchant("d", domain.DistrictHongqi, domain.StatusCompleted, "2025-06-05", "s3"),
	}
	svc := newDashboard(staff, merchants)

	rows := svc.Performance(DashboardFilter{District: string(domain.DistrictMuye), Month: "2025-06"})
	require.Len(t, rows, 2)
	// per-staff rows count against the full collection, not the month subset
	assert.Equal(t, PerformanceRow{Name: "李明", Completed: 2, Active: 0, Total: 2}, rows[0])
	assert.Equal(t, PerformanceRow{Name: "王芳", Completed: 0, Active: 1, Total: 1}, rows[1])
}

func TestPerformancePerDistrictUsesMonthSubset(t *testing.T) {
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusCompleted, "2025-06-01", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusCompleted, "2025-07-01", "s1"),
		mkMerchant("c", domain.DistrictHongqi, domain.StatusPending, "2025-06-10", "s2"),
	}
	svc := newDashboard(nil, merchants)

	rows := svc.Performance(DashboardFilter{District: "All", Month: "2025-06"})
	require.Len(t, rows, len(domain.Districts()))
	assert.Equal(t, PerformanceRow{Name: string(domain.DistrictMuye), Completed: 1, Total: 1}, rows[0])
	assert.Equal(t, PerformanceRow{Name: string(domain.DistrictHongqi), Completed: 0, Total: 1}, rows[1])
	// districts with no merchants in the subset still get a zero row
	assert.Equal(t, PerformanceRow{Name: string(domain.DistrictKaifa)}, rows[2])
}
