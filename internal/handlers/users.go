// users.go
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
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/utils"
)

// UserHandler handles user administration routes
type UserHandler struct {
	Ctx *services.Context
}

// roleInput is the payload for a role change.
type roleInput struct {
	Role string `json:"role"`
}

// List handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, redactUsers(services.ListUsers(h.Ctx)), fiber.StatusOK)
}

// UpdateRole handles PATCH /api/users/:id/role
// @Summary Change a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body roleInput true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id := c.Params("id")

	var in roleInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "users.role")
	}

	user := services.UpdateUserRole(h.Ctx, id, in.Role)
	if user == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("User '%s' not found or role invalid", id))
	}

	return utils.SuccessResponse(c, redactUser(user), fiber.StatusOK)
}

// Deactivate handles POST /api/users/:id/deactivate
// @Summary Deactivate a user
// @Description Mark the account inactive, preserving its record and history
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")

	user := services.DeactivateUser(h.Ctx, id)
	if user == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("User '%s' not found", id))
	}

	return utils.SuccessResponse(c, redactUser(user), fiber.StatusOK)
}
