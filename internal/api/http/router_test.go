package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/renewal-service/internal/api/http/handlers"
	"github.com/spec-kit/renewal-service/internal/auth"
	"github.com/spec-kit/renewal-service/internal/config"
	"github.com/spec-kit/renewal-service/internal/observability"
	"github.com/spec-kit/renewal-service/internal/repository"
	"github.com/spec-kit/renewal-service/internal/seed"
	"github.com/spec-kit/renewal-service/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{Name: "license-renewal-service", Version: "test"},
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			AdminAccessCode:       "8888",
			StaffAccessCode:       "8888",
		},
	}

	ds := seed.Generate(rand.New(rand.NewSource(1)))
	staffRepo := repository.NewStaffRepository(ds.Staff)
	merchantRepo := repository.NewMerchantRepository(ds.Merchants)

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		StaffRepo:    staffRepo,
		MerchantRepo: merchantRepo,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		MerchantRepo: merchantRepo,
		StaffRepo:    staffRepo,
	})
	taskService := service.NewTaskService(service.TaskDependencies{MerchantRepo: merchantRepo})
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		MerchantRepo: merchantRepo,
		StaffRepo:    staffRepo,
	})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, staffRepo, merchantRepo),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, intakeService),
		Tasks:          handlers.NewTasksHandler(taskService),
		Portal:         handlers.NewPortalHandler(staffRepo),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), staffRepo, merchantRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func loginToken(t *testing.T, app *fiber.App, path string, payload any) string {
	t.Helper()
	status, body := doJSON(t, app, nethttp.MethodPost, path, "", payload)
	require.Equal(t, nethttp.StatusOK, status, "login failed: %v", body)
	data := body["data"].(map[string]any)
	authPart := data["auth"].(map[string]any)
	token, _ := authPart["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthReady(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, nethttp.MethodGet, "/health/ready", "", nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
}

func TestAdminLoginAndDashboard(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, nethttp.MethodPost, "/auth/admin/login", "", map[string]any{"access_code": "0000"})
	require.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]any)["code"])

	token := loginToken(t, app, "/auth/admin/login", map[string]any{"access_code": "8888"})

	status, body = doJSON(t, app, nethttp.MethodGet, "/admin/dashboard/stats", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Greater(t, data["total"].(float64), float64(1000))
	assert.NotEmpty(t, data["rate"])

	status, _ = doJSON(t, app, nethttp.MethodGet, "/admin/dashboard/stats", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status)
}

func TestStaffWorkbenchFlow(t *testing.T) {
	app := newTestApp(t)

	token := loginToken(t, app, "/auth/staff/login", map[string]any{
		"access_code": "8888",
		"name":        seed.DemoStaffName,
	})

	status, body := doJSON(t, app, nethttp.MethodGet, "/staff/tasks", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	data := body["data"].(map[string]any)
	staff := data["staff"].(map[string]any)
	assert.Equal(t, seed.DemoStaffID, staff["id"])

	path := fmt.Sprintf("/staff/tasks/%s/status", seed.DemoMerchantID)
	status, body = doJSON(t, app, nethttp.MethodPost, path, token, map[string]any{"status": "scheduled"})
	require.Equal(t, nethttp.StatusOK, status)
	task := body["data"].(map[string]any)
	assert.Equal(t, "scheduled", task["status"])
	assert.Equal(t, "已预约", task["status_label"])

	// re-applying the same transition is refused
	status, body = doJSON(t, app, nethttp.MethodPost, path, token, map[string]any{"status": "scheduled"})
	require.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])

	// staff tokens do not open admin routes
	status, _ = doJSON(t, app, nethttp.MethodGet, "/admin/dashboard/stats", token, nil)
	assert.Equal(t, nethttp.StatusForbidden, status)
}

func TestMerchantPortalFlow(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, nethttp.MethodPost, "/auth/merchants/login", "", map[string]any{"license_no": "000000000000"})
	require.Equal(t, nethttp.StatusNotFound, status)
	assert.Contains(t, body["error"].(map[string]any)["message"], "未找到该证号任务")

	token := loginToken(t, app, "/auth/merchants/login", map[string]any{"license_no": seed.DemoLicenseNo})

	status, body = doJSON(t, app, nethttp.MethodGet, "/merchants/me", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	data := body["data"].(map[string]any)
	merchant := data["merchant"].(map[string]any)
	assert.Equal(t, seed.DemoMerchantID, merchant["id"])
	assert.Equal(t, float64(1), data["step"])
	staff := data["staff"].(map[string]any)
	assert.Equal(t, seed.DemoStaffName, staff["name"])
	assert.Equal(t, seed.DemoStaffPhone, staff["phone"])
}

func TestAdminCreateMerchant(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app, "/auth/admin/login", map[string]any{"access_code": "8888"})

	payload := map[string]any{
		"name":        "平安烟酒店",
		"license_no":  "410788880001",
		"owner_name":  "陈国平",
		"address":     "新乡市牧野区人民路66号",
		"phone":       "13700006666",
		"expire_date": "2026-02-10",
		"district":    "牧野",
	}
	status, body := doJSON(t, app, nethttp.MethodPost, "/admin/merchants", token, payload)
	require.Equal(t, nethttp.StatusCreated, status, "create failed: %v", body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])
	assert.NotEmpty(t, data["staff_id"])

	status, body = doJSON(t, app, nethttp.MethodPost, "/admin/merchants", token, payload)
	require.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])
}
