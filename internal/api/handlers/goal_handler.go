package handlers

import (
	"fintracker/internal/dto"
	"fintracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// List godoc
// @Summary List goals
// @Description Get the user's savings goals with progress and days-left
// @Tags goals
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goals, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list goals", zap.Error(err))
		return serviceError(c, err, "Failed to list goals")
	}

	return c.JSON(goals)
}

// Create godoc
// @Summary Create a goal
// @Description Create a savings goal with a target amount and deadline
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.GoalRequest true "Goal"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create goal", zap.Error(err))
		return serviceError(c, err, "Failed to create goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// Update godoc
// @Summary Update a goal
// @Description Edit a goal owned by the user
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.GoalRequest true "Goal"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Update(c.Context(), userID, id, &req)
	if err != nil {
		h.logger.Error("Failed to update goal", zap.Error(err))
		return serviceError(c, err, "Failed to update goal")
	}

	return c.JSON(goal)
}

// AddFunds godoc
// @Summary Add funds to a goal
// @Description Add an amount to the goal's running total, clamped at the target
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.AddFundsRequest true "Amount"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id}/add [post]
func (h *GoalHandler) AddFunds(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.AddFundsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.AddFunds(c.Context(), userID, id, &req)
	if err != nil {
		h.logger.Error("Failed to add funds to goal", zap.Error(err))
		return serviceError(c, err, "Failed to add funds to goal")
	}

	return c.JSON(goal)
}

// Delete godoc
// @Summary Delete a goal
// @Description Delete a goal owned by the user
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := h.goalService.Delete(c.Context(), userID, id); err != nil {
		h.logger.Error("Failed to delete goal", zap.Error(err))
		return serviceError(c, err, "Failed to delete goal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
