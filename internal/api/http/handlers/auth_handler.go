package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/api/dto"
	"github.com/spec-kit/renewal-service/internal/service"
)

// AuthHandler exposes the three role login flows.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.AccessCode == "" {
		return fiber.NewError(http.StatusBadRequest, "access code required")
	}

	session, err := h.authService.LoginAdmin(req.AccessCode)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}

// StaffLogin handles POST /auth/staff/login.
func (h *AuthHandler) StaffLogin(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.AccessCode == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "access code and name required")
	}

	staff, session, err := h.authService.LoginStaff(req.AccessCode, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff": dto.NewStaffResponse(staff),
			"auth":  dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}

// StaffRegister handles POST /auth/staff/register.
func (h *AuthHandler) StaffRegister(c *fiber.Ctx) error {
	var req dto.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.AccessCode == "" || req.Name == "" || req.Phone == "" {
		return fiber.NewError(http.StatusBadRequest, "请填写完整信息")
	}

	staff, session, err := h.authService.RegisterStaff(req.AccessCode, req.District)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff": dto.NewStaffResponse(staff),
			"auth":  dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}

// MerchantLogin handles POST /auth/merchants/login.
func (h *AuthHandler) MerchantLogin(c *fiber.Ctx) error {
	var req dto.MerchantLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.LicenseNo == "" {
		return fiber.NewError(http.StatusBadRequest, "license number required")
	}

	merchant, session, err := h.authService.LoginMerchant(req.LicenseNo)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"merchant": dto.NewMerchantResponse(merchant),
			"auth":     dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}

// MerchantRegister handles POST /auth/merchants/register.
func (h *AuthHandler) MerchantRegister(c *fiber.Ctx) error {
	var req dto.MerchantRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.LicenseNo == "" {
		return fiber.NewError(http.StatusBadRequest, "license number required")
	}

	merchant, session, err := h.authService.RegisterMerchant(req.LicenseNo, req.OwnerName, req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"merchant": dto.NewMerchantResponse(merchant),
			"auth":     dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
		},
	})
}
