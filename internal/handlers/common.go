// common.go
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
	"github.com/gofiber/fiber/v2"

	"github.com/monastery360/datastore/internal/models"
)

// localUser returns the user the auth middleware attached to the request,
// or nil when the route runs without auth.
func localUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// sessionResponse is the envelope returned by auth endpoints.
type sessionResponse struct {
	Ok   bool         `json:"ok"`
	User *models.User `json:"user"`
}

// redactUser strips the stored credential before a record leaves the API.
// The password field stays serializable because the store and backup
// documents round-trip records through JSON.
func redactUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	redacted := *u
	redacted.Password = ""
	return &redacted
}

func redactUsers(users []models.User) []models.User {
	redacted := make([]models.User, len(users))
	for i, u := range users {
		u.Password = ""
		redacted[i] = u
	}
	return redacted
}
