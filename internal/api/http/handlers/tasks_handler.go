package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/renewal-service/internal/api/dto"
	"github.com/spec-kit/renewal-service/internal/auth"
	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/service"
)

// TasksHandler exposes the staff workbench endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(tasks *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

func staffPrincipal(c *fiber.Ctx) (*domain.Staff, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return nil, fiber.NewError(http.StatusUnauthorized, "staff session required")
	}
	return principal.Staff, nil
}

// ListActive handles GET /staff/tasks. Active tasks come back sorted by days
// remaining with the urgent sub-list repeated up front.
func (h *TasksHandler) ListActive(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	active, urgent := h.tasks.ActiveTasks(staff.ID)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff":        dto.NewStaffResponse(staff),
			"active":       dto.NewMerchantResponses(active),
			"urgent":       dto.NewMerchantResponses(urgent),
			"urgent_count": len(urgent),
		},
	})
}

// ListHistory handles GET /staff/tasks/history.
func (h *TasksHandler) ListHistory(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	completed := h.tasks.CompletedTasks(staff.ID)
	return c.JSON(fiber.Map{"data": dto.NewMerchantResponses(completed), "total": len(completed)})
}

// GetTask handles GET /staff/tasks/:id.
func (h *TasksHandler) GetTask(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	task, err := h.tasks.GetTask(staff, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMerchantResponse(task)})
}

// UpdateStatus handles POST /staff/tasks/:id/status.
func (h *TasksHandler) UpdateStatus(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	task, err := h.tasks.UpdateStatus(c.Context(), staff, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMerchantResponse(task)})
}
