package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// RequireAdmin ensures an admin session.
func RequireAdmin() fiber.Handler {
	return requireSubject(domain.SubjectTypeAdmin, "admin access required")
}

// RequireStaff ensures a staff session with a resolved roster record.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeStaff || principal.Staff == nil {
			return fiber.NewError(http.StatusForbidden, "staff access required")
		}
		return c.Next()
	}
}

// RequireMerchant ensures a merchant session with a resolved record.
func RequireMerchant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeMerchant || principal.Merchant == nil {
			return fiber.NewError(http.StatusForbidden, "merchant access required")
		}
		return c.Next()
	}
}

func requireSubject(subject domain.SubjectType, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != subject {
			return fiber.NewError(http.StatusForbidden, message)
		}
		return c.Next()
	}
}
