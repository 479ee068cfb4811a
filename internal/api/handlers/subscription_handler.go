package handlers

import (
	"fintracker/internal/dto"
	"fintracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
	logger     *zap.Logger
}

func NewSubscriptionHandler(subService *service.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subService: subService,
		logger:     logger,
	}
}

// List godoc
// @Summary List subscriptions
// @Description Get the user's subscriptions with days until next due date
// @Tags subscriptions
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SubscriptionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	subs, err := h.subService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list subscriptions", zap.Error(err))
		return serviceError(c, err, "Failed to list subscriptions")
	}

	return c.JSON(subs)
}

// Create godoc
// @Summary Create a subscription
// @Description Track a recurring monthly charge by its due day of month
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscriptionRequest true "Subscription"
// @Security Bearer
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/subscriptions [post]
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := h.subService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create subscription", zap.Error(err))
		return serviceError(c, err, "Failed to create subscription")
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

// Update godoc
// @Summary Update a subscription
// @Description Edit a subscription owned by the user
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body dto.SubscriptionRequest true "Subscription"
// @Security Bearer
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/subscriptions/{id} [put]
func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription ID",
		})
	}

	var req dto.SubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := h.subService.Update(c.Context(), userID, id, &req)
	if err != nil {
		h.logger.Error("Failed to update subscription", zap.Error(err))
		return serviceError(c, err, "Failed to update subscription")
	}

	return c.JSON(sub)
}

// Delete godoc
// @Summary Delete a subscription
// @Description Delete a subscription owned by the user
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/v1/subscriptions/{id} [delete]
func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription ID",
		})
	}

	if err := h.subService.Delete(c.Context(), userID, id); err != nil {
		h.logger.Error("Failed to delete subscription", zap.Error(err))
		return serviceError(c, err, "Failed to delete subscription")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
