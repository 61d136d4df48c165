// admin.go
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
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/utils"
)

// AdminHandler handles the activity trail, analytics, and backup routes
type AdminHandler struct {
	Ctx *services.Context
}

// Activities handles GET /api/admin/activities
// @Summary List admin activities
// @Description Newest first, capped at the retention limit
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Activity
// @Router /admin/activities [get]
func (h *AdminHandler) Activities(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, services.ListActivities(h.Ctx), fiber.StatusOK)
}

// Analytics handles GET /api/admin/analytics
// @Summary Get the stored analytics snapshot
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AnalyticsSnapshot
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	snapshot := services.GetAnalytics(h.Ctx)
	if snapshot == nil {
		return utils.NotFoundResponse(c, "No analytics snapshot has been generated yet")
	}
	return utils.SuccessResponse(c, snapshot, fiber.StatusOK)
}

// GenerateAnalytics handles POST /api/admin/analytics
// @Summary Generate a fresh analytics snapshot
// @Description Recompute all aggregates from the stored collections
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AnalyticsSnapshot
// @Router /admin/analytics [post]
func (h *AdminHandler) GenerateAnalytics(c *fiber.Ctx) error {
	snapshot := services.GenerateAnalytics(h.Ctx)
	return utils.SuccessResponse(c, snapshot, fiber.StatusOK)
}

// ExportBackup handles GET /api/admin/backup
// @Summary Export a backup document
// @Description Snapshot every collection into a single portable document
// @Tags Admin
// @Produce json
// @Success 200 {object} models.BackupDocument
// @Router /admin/backup [get]
func (h *AdminHandler) ExportBackup(c *fiber.Ctx) error {
	doc := services.ExportBackup(h.Ctx)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="monastery360-backup.json"`)
	return utils.SuccessResponse(c, doc, fiber.StatusOK)
}

// ImportBackup handles POST /api/admin/backup
// @Summary Restore from a backup document
// @Description Replace stored collections with the ones present in the document
// @Tags Admin
// @Accept json
// @Produce json
// @Param backup body models.BackupDocument true "Backup document"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/backup [post]
func (h *AdminHandler) ImportBackup(c *fiber.Ctx) error {
	var doc models.BackupDocument
	if err := c.BodyParser(&doc); err != nil {
		return utils.ErrorResponse(c, services.ErrMalformedBackup.Error(),
			fiber.StatusBadRequest, "admin.backup")
	}

	if err := services.ImportBackup(h.Ctx, doc); err != nil {
		if errors.Is(err, services.ErrMalformedBackup) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "admin.backup")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "admin.backup")
	}

	return utils.MutationSuccessResponse(c, 1)
}
