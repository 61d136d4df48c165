// monasteries.go
//
// Relational replacement for the Monastery360 browser localStorage data layer
// Copyright (c) 2026 Monastery360 Project
//
// This file is part of monastery360-datastore.
// monastery360-datastore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// monastery360-datastore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with
// monastery360-datastore. If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/utils"
)

// MonasteryHandler handles monastery content routes
type MonasteryHandler struct {
	Ctx   *services.Context
	Tours []models.Tour
}

// List handles GET /api/monasteries
// @Summary List monasteries
// @Tags Monasteries
// @Produce json
// @Success 200 {array} models.Monastery
// @Router /monasteries [get]
func (h *MonasteryHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, services.ListMonasteries(h.Ctx), fiber.StatusOK)
}

// Add handles POST /api/monasteries
// @Summary Add a monastery
// @Tags Monasteries
// @Accept json
// @Produce json
// @Param monastery body services.MonasteryInput true "Monastery data"
// @Success 201 {object} models.Monastery
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /monasteries [post]
func (h *MonasteryHandler) Add(c *fiber.Ctx) error {
	var in services.MonasteryInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "monasteries.add")
	}

	monastery, err := services.AddMonastery(h.Ctx, in)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "monasteries.add")
	}

	return utils.SuccessResponse(c, monastery, fiber.StatusCreated)
}

// Update handles PATCH /api/monasteries/:id
// @Summary Update a monastery
// @Description Apply a partial update to an existing monastery
// @Tags Monasteries
// @Accept json
// @Produce json
// @Param id path string true "Monastery ID"
// @Param patch body models.MonasteryPatch true "Fields to change"
// @Success 200 {object} models.Monastery
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /monasteries/{id} [patch]
func (h *MonasteryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch models.MonasteryPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "monasteries.update")
	}

	monastery := services.UpdateMonastery(h.Ctx, id, patch)
	if monastery == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Monastery '%s' not found", id))
	}

	return utils.SuccessResponse(c, monastery, fiber.StatusOK)
}

// Delete handles DELETE /api/monasteries/:id
// @Summary Delete a monastery
// @Tags Monasteries
// @Produce json
// @Param id path string true "Monastery ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /monasteries/{id} [delete]
func (h *MonasteryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if !services.DeleteMonastery(h.Ctx, id) {
		return utils.NotFoundResponse(c, fmt.Sprintf("Monastery '%s' not found", id))
	}

	return utils.MutationSuccessResponse(c, 1)
}

// ListTours handles GET /api/monasteries/tours
// @Summary List virtual tours
// @Description Virtual tours come from the curated content bundle and are read-only
// @Tags Monasteries
// @Produce json
// @Success 200 {array} models.Tour
// @Router /monasteries/tours [get]
func (h *MonasteryHandler) ListTours(c *fiber.Ctx) error {
	tours := h.Tours
	if tours == nil {
		tours = []models.Tour{}
	}
	return utils.SuccessResponse(c, tours, fiber.StatusOK)
}
