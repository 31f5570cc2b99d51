package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/api/dto"
	"github.com/spec-kit/renewal-service/internal/auth"
	"github.com/spec-kit/renewal-service/internal/repository"
)

// PortalHandler exposes the merchant self-service view.
type PortalHandler struct {
	staff repository.StaffRepository
}

// NewPortalHandler constructs handler.
func NewPortalHandler(staff repository.StaffRepository) *PortalHandler {
	return &PortalHandler{staff: staff}
}

// Me handles GET /merchants/me: the session record, its derived progress step
// and the assigned officer's contact card.
func (h *PortalHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Merchant == nil {
		return fiber.NewError(http.StatusUnauthorized, "merchant session required")
	}
	merchant := principal.Merchant

	resp := dto.PortalResponse{
		Merchant: dto.NewMerchantResponse(merchant),
		Step:     merchant.Status.PortalStep(),
	}
	officer, err := h.staff.GetByID(merchant.StaffID)
	if err == nil {
		resp.Staff = &dto.StaffContact{Name: officer.Name, Phone: officer.Phone}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return c.JSON(fiber.Map{"data": resp})
}
