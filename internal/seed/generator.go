// Package seed builds the self-consistent synthetic dataset the demo session
// runs on: districts, a staff roster, and cross-referenced merchant renewal
// tasks. Generation is pure computation over fixed bounds; it cannot fail and
// always yields a non-empty result.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// Reserved demo records. They exist unconditionally and are mutually linked so
// the fixed login credentials work regardless of what the random population
// looks like.
const (
	DemoStaffID    = "s0"
	DemoStaffName  = "王建国"
	DemoStaffPhone = "13800008888"

	DemoMerchantID      = "m_demo"
	DemoLicenseNo       = "410712345678"
	DemoMerchantPhone   = "13900008888"
	DemoMerchantExpires = "2026-01-22"
)

// Generation bounds.
const (
	staffPerDistrictMin     = 5
	staffPerDistrictJitter  = 4 // 5..8 per district
	merchantsPerMonthMin    = 90
	merchantsPerMonthJitter = 20 // 90..109 per month
	activePoolSize          = 50

	// Historical records never use DaysRemaining; they carry this sentinel
	// instead of a computed value.
	historicalDaysSentinel = -100
)

// Dataset is the immutable-after-construction snapshot held for the session.
type Dataset struct {
	Staff     []domain.Staff
	Merchants []domain.Merchant
}

// Generate builds the full dataset using the provided random source. The flow
// is: staff roster first, then merchants, then a single aggregation pass that
// derives the per-staff task counters. The counters are never touched inside
// the merchant loops, so generation order cannot skew them.
func Generate(rng *rand.Rand) *Dataset {
	clock := domain.Clock()

	staff := generateStaff(rng)
	merchants := generateMerchants(rng, staff, clock)

	applyTaskCounters(staff, merchants)

	return &Dataset{Staff: staff, Merchants: merchants}
}

func generateStaff(rng *rand.Rand) []domain.Staff {
	list := []domain.Staff{{
		ID:         DemoStaffID,
		Name:       DemoStaffName,
		EmployeeID: "YG1000",
		Area:       domain.DistrictMuye,
		Phone:      DemoStaffPhone,
	}}

	idCounter := 1
	for _, district := range domain.Districts() {
		count := staffPerDistrictMin + rng.Intn(staffPerDistrictJitter)
		for i := 0; i < count; i++ {
			list = append(list, domain.Staff{
				ID:         fmt.Sprintf("s%d", idCounter),
				Name:       personName(rng),
				EmployeeID: fmt.Sprintf("YG%d", 1000+idCounter),
				Area:       district,
				Phone:      fmt.Sprintf("13%d0000%d", 1+rng.Intn(9), 1000+idCounter),
			})
			idCounter++
		}
	}
	return list
}

func generateMerchants(rng *rand.Rand, staff []domain.Staff, clock time.Time) []domain.Merchant {
	byDistrict := make(map[domain.District][]domain.Staff)
	for _, s := range staff {
		byDistrict[s.Area] = append(byDistrict[s.Area], s)
	}
	pickStaff := func(d domain.District) domain.Staff {
		pool := byDistrict[d]
		return pool[rng.Intn(len(pool))]
	}
	pickDistrict := func() domain.District {
		all := domain.Districts()
		return all[rng.Intn(len(all))]
	}

	var merchants []domain.Merchant

	// Bulk archived population: ~100 merchants per month across the fixed
	// historical year, all completed.
	idCounter := 1
	for month := 1; month <= 12; month++ {
		count := merchantsPerMonthMin + rng.Intn(merchantsPerMonthJitter)
		for i := 0; i < count; i++ {
			district := pickDistrict()
			assignee := pickStaff(district)
			day := 1 + rng.Intn(28)
			expireDate := fmt.Sprintf("%d-%02d-%02d", domain.HistoricalYear, month, day)

			merchants = append(merchants, domain.Merchant{
				ID:            fmt.Sprintf("m%d", idCounter),
				Name:          shopName(rng),
				LicenseNo:     fmt.Sprintf("4107%d", 10000000+idCounter),
				OwnerName:     personName(rng),
				Address:       shopAddress(rng, district),
				Phone:         fmt.Sprintf("138%08d", idCounter),
				ExpireDate:    expireDate,
				DaysRemaining: historicalDaysSentinel,
				Status:        domain.StatusCompleted,
				StaffID:       assignee.ID,
				District:      district,
				History:       []domain.HistoryEntry{{Date: expireDate, Action: "已归档"}},
			})
			idCounter++
		}
	}

	// Active pool: 50 near-term tasks expiring in the two months after the
	// simulated clock, every 5th already visited.
	for i := 0; i < activePoolSize; i++ {
		district := pickDistrict()
		assignee := pickStaff(district)
		month := 1 + rng.Intn(2)
		day := 1 + rng.Intn(28)
		expireDate := fmt.Sprintf("2026-%02d-%02d", month, day)
		days, _ := domain.DaysUntil(expireDate, clock)

		status := domain.StatusPending
		if i%5 == 0 {
			status = domain.StatusVisited
		}

		merchants = append(merchants, domain.Merchant{
			ID:            fmt.Sprintf("m_active_%d", i),
			Name:          shopName(rng),
			LicenseNo:     fmt.Sprintf("41079999%d", i),
			OwnerName:     personName(rng),
			Address:       shopAddress(rng, district),
			Phone:         fmt.Sprintf("150000000%d", i),
			ExpireDate:    expireDate,
			DaysRemaining: days,
			Status:        status,
			StaffID:       assignee.ID,
			District:      district,
			History:       []domain.HistoryEntry{},
		})
	}

	merchants = append(merchants, demoMerchant(clock))

	return merchants
}

// demoMerchant is the fixed record behind the demo license number, assigned to
// the demo staff so the pair is mutually reachable.
func demoMerchant(clock time.Time) domain.Merchant {
	days, _ := domain.DaysUntil(DemoMerchantExpires, clock)
	return domain.Merchant{
		ID:            DemoMerchantID,
		Name:          "鸿运烟酒商行",
		LicenseNo:     DemoLicenseNo,
		OwnerName:     "刘建华",
		Address:       "新乡市牧野区和平路18号",
		Phone:         DemoMerchantPhone,
		ExpireDate:    DemoMerchantExpires,
		DaysRemaining: days,
		Status:        domain.StatusPending,
		StaffID:       DemoStaffID,
		District:      domain.DistrictMuye,
		History:       []domain.HistoryEntry{},
	}
}

// applyTaskCounters derives each staff member's task counters in one pass over
// the merchant collection, grouped by assignee id.
func applyTaskCounters(staff []domain.Staff, merchants []domain.Merchant) {
	type counts struct{ active, completed int }
	byStaff := make(map[string]counts, len(staff))

	for _, m := range merchants {
		c := byStaff[m.StaffID]
		if m.Status == domain.StatusCompleted {
			c.completed++
		} else {
			c.active++
		}
		byStaff[m.StaffID] = c
	}

	for i := range staff {
		c := byStaff[staff[i].ID]
		staff[i].ActiveTasks = c.active
		staff[i].CompletedTasks = c.completed
	}
}

func personName(rng *rand.Rand) string {
	name := surnames[rng.Intn(len(surnames))] + givenNameChars[rng.Intn(len(givenNameChars))]
	if rng.Intn(2) == 0 {
		name += givenNameChars[rng.Intn(len(givenNameChars))]
	}
	return name
}

func shopName(rng *rand.Rand) string {
	return shopPrefixes[rng.Intn(len(shopPrefixes))] + shopSuffixes[rng.Intn(len(shopSuffixes))]
}

func shopAddress(rng *rand.Rand, district domain.District) string {
	return fmt.Sprintf("新乡市%s区%s%d号", district, streetNames[rng.Intn(len(streetNames))], 1+rng.Intn(100))
}
