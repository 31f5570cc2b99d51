package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	staff       repository.StaffRepository
	merchants   repository.MerchantRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, staff repository.StaffRepository, merchants repository.MerchantRepository) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, staff: staff, merchants: merchants}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: the only dependency is the generated dataset,
// which must be non-empty.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	staffCount := len(h.staff.List(""))
	merchantCount := len(h.merchants.List())

	if staffCount == 0 || merchantCount == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DATASET_EMPTY",
				"message": "session dataset not generated",
			},
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"dataset": fiber.Map{
			"staff":     staffCount,
			"merchants": merchantCount,
		},
	})
}
