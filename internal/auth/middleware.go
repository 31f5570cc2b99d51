package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/repository"
	apperrors "github.com/spec-kit/renewal-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Staff and Merchant carry
// snapshots of the matching records; the admin role has no record behind it.
type Principal struct {
	SubjectType domain.SubjectType
	Staff       *domain.Staff
	Merchant    *domain.Merchant
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	staff     repository.StaffRepository
	merchants repository.MerchantRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, staff repository.StaffRepository, merchants repository.MerchantRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, staff: staff, merchants: merchants}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{SubjectType: claims.Subject}

	switch claims.Subject {
	case domain.SubjectTypeAdmin:
		// access-code only, no backing record
	case domain.SubjectTypeStaff:
		staff, err := m.staff.GetByID(claims.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.NewUnauthorized("staff not found")
			}
			return apperrors.MapError(err)
		}
		principal.Staff = staff
	case domain.SubjectTypeMerchant:
		merchant, err := m.merchants.GetByID(claims.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.NewUnauthorized("merchant not found")
			}
			return apperrors.MapError(err)
		}
		principal.Merchant = merchant
	default:
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
