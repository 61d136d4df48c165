// archives.go
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

// ArchiveHandler handles digital archive routes
type ArchiveHandler struct {
	Ctx *services.Context
}

// List handles GET /api/archives
// @Summary List archives
// @Tags Archives
// @Produce json
// @Success 200 {array} models.Archive
// @Router /archives [get]
func (h *ArchiveHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, services.ListArchives(h.Ctx), fiber.StatusOK)
}

// Add handles POST /api/archives
// @Summary Add an archive
// @Tags Archives
// @Accept json
// @Produce json
// @Param archive body services.ArchiveInput true "Archive data"
// @Success 201 {object} models.Archive
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /archives [post]
func (h *ArchiveHandler) Add(c *fiber.Ctx) error {
	var in services.ArchiveInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "archives.add")
	}

	archive, err := services.AddArchive(h.Ctx, in)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "archives.add")
	}

	return utils.SuccessResponse(c, archive, fiber.StatusCreated)
}

// Update handles PATCH /api/archives/:id
// @Summary Update an archive
// @Tags Archives
// @Accept json
// @Produce json
// @Param id path string true "Archive ID"
// @Param patch body models.ArchivePatch true "Fields to change"
// @Success 200 {object} models.Archive
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /archives/{id} [patch]
func (h *ArchiveHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch models.ArchivePatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "archives.update")
	}

	archive := services.UpdateArchive(h.Ctx, id, patch)
	if archive == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Archive '%s' not found", id))
	}

	return utils.SuccessResponse(c, archive, fiber.StatusOK)
}

// Download handles POST /api/archives/:id/download
// @Summary Record an archive download
// @Description Increment the download counter and return the updated archive
// @Tags Archives
// @Produce json
// @Param id path string true "Archive ID"
// @Success 200 {object} models.Archive
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /archives/{id}/download [post]
func (h *ArchiveHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")

	archive := services.IncrementDownloads(h.Ctx, id)
	if archive == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Archive '%s' not found", id))
	}

	return utils.SuccessResponse(c, archive, fiber.StatusOK)
}
