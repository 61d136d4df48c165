package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/utils"
)

// EventHandler handles calendar event routes
type EventHandler struct {
	Ctx *services.Context
}

// List handles GET /api/events
// @Summary List calendar events
// @Tags Events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, services.ListEvents(h.Ctx), fiber.StatusOK)
}

// Add handles POST /api/events
// @Summary Add a calendar event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body services.EventInput true "Event data"
// @Success 201 {object} models.Event
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /events [post]
func (h *EventHandler) Add(c *fiber.Ctx) error {
	var in services.EventInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "events.add")
	}

	event, err := services.AddEvent(h.Ctx, in)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "events.add")
	}

	return utils.SuccessResponse(c, event, fiber.StatusCreated)
}
