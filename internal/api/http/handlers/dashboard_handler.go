package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/api/dto"
	"github.com/spec-kit/renewal-service/internal/service"
)

// merchantListCap bounds the detail listing like the original table render.
const merchantListCap = 100

// DashboardHandler exposes the admin dashboard and management endpoints.
type DashboardHandler struct {
	dashboards *service.DashboardService
	intake     *service.IntakeService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboards *service.DashboardService, intake *service.IntakeService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, intake: intake}
}

func dashboardFilter(c *fiber.Ctx) service.DashboardFilter {
	return service.DashboardFilter{
		District: c.Query("district", "All"),
		Month:    c.Query("month", "All"),
	}
}

// Stats handles GET /admin/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats := h.dashboards.Stats(dashboardFilter(c))
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Total:       stats.Total,
		Completed:   stats.Completed,
		Rejected:    stats.Rejected,
		Rate:        stats.Rate,
		AvgTimeDays: stats.AvgTimeDays,
	}})
}

// StatusDistribution handles GET /admin/dashboard/status-distribution.
func (h *DashboardHandler) StatusDistribution(c *fiber.Ctx) error {
	buckets := h.dashboards.StatusDistribution(dashboardFilter(c))
	out := make([]dto.StatusBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.StatusBucketResponse{Name: b.Name, Value: b.Value})
	}
	return c.JSON(fiber.Map{"data": out})
}

// Performance handles GET /admin/dashboard/performance.
func (h *DashboardHandler) Performance(c *fiber.Ctx) error {
	rows := h.dashboards.Performance(dashboardFilter(c))
	out := make([]dto.PerformanceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PerformanceRowResponse{
			Name:      r.Name,
			Completed: r.Completed,
			Active:    r.Active,
			Total:     r.Total,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// ListStaff handles GET /admin/staff.
func (h *DashboardHandler) ListStaff(c *fiber.Ctx) error {
	roster := h.dashboards.StaffList(c.Query("district", "All"))
	out := make([]dto.StaffResponse, 0, len(roster))
	for i := range roster {
		out = append(out, dto.NewStaffResponse(&roster[i]))
	}
	return c.JSON(fiber.Map{"data": out, "total": len(out)})
}

// ListMerchants handles GET /admin/merchants.
func (h *DashboardHandler) ListMerchants(c *fiber.Ctx) error {
	merchants := h.dashboards.Merchants(dashboardFilter(c))
	total := len(merchants)

	limit := merchantListCap
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return fiber.NewError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}
	if len(merchants) > limit {
		merchants = merchants[:limit]
	}

	return c.JSON(fiber.Map{"data": dto.NewMerchantResponses(merchants), "total": total})
}

// CreateMerchant handles POST /admin/merchants.
func (h *DashboardHandler) CreateMerchant(c *fiber.Ctx) error {
	var req dto.CreateMerchantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	merchant, err := h.intake.CreateMerchant(c.Context(), service.IntakeInput{
		Name:       req.Name,
		LicenseNo:  req.LicenseNo,
		OwnerName:  req.OwnerName,
		Address:    req.Address,
		Phone:      req.Phone,
		ExpireDate: req.ExpireDate,
		District:   req.District,
		StaffName:  req.StaffName,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMerchantResponse(merchant)})
}
