// seed.go
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

package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/monastery360/datastore/data"
	"github.com/monastery360/datastore/internal/models"
)

// ContentBundle is the externally supplied content collaborator: curated
// monasteries, tours, archives and events. Bundles arrive already validated.
type ContentBundle struct {
	Monasteries []models.Monastery `json:"monasteries"`
	Tours       []models.Tour      `json:"tours"`
	Archives    []models.Archive   `json:"archives"`
	Events      []models.Event     `json:"events"`
}

// LoadContentBundle reads a bundle from path, or the embedded sample bundle
// when path is empty.
func LoadContentBundle(path string) (*ContentBundle, error) {
	raw := data.ContentJSON
	if path != "" {
		external, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content bundle: %w", err)
		}
		raw = external
	}

	var bundle ContentBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse content bundle: %w", err)
	}
	return &bundle, nil
}

// ApplyContent seeds the store from a bundle. Each non-empty bundle
// collection is written only when the stored collection is empty or absent:
// unlike the browser original, which re-read the bundle on every page load,
// a service restart must not clobber content edited through the admin API.
func ApplyContent(ctx *Context, bundle *ContentBundle) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	seedCollection(ctx, models.KeyMonasteries, bundle.Monasteries)
	seedCollection(ctx, models.KeyArchives, bundle.Archives)
	seedCollection(ctx, models.KeyEvents, bundle.Events)
}

// seedCollection writes seed when the stored collection has no records.
func seedCollection[T any](ctx *Context, key string, seed []T) {
	if len(seed) == 0 {
		return
	}
	existing := []json.RawMessage{}
	if ctx.Store().Get(key, &existing) && len(existing) > 0 {
		return
	}
	if ctx.Store().Set(key, seed) {
		log.Printf("Seeded %d records into %s", len(seed), key)
	}
}

// demoUsers mirror the sample accounts the site ships for local-credential
// demos. They exist only until real users are registered or restored.
func demoUsers() []models.User {
	return []models.User{
		{
			ID:        "admin_1",
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@monastery360.com",
			Password:  "admin123",
			Role:      models.RoleSuperAdmin,
			Active:    true,
			CreatedAt: now(),
		},
		{
			ID:        "monk_1",
			FirstName: "Lama",
			LastName:  "Tenzin",
			Email:     "tenzin@rumtek.monastery",
			Password:  "monk123",
			Role:      models.RoleMonk,
			Active:    true,
			CreatedAt: now(),
		},
		{
			ID:        "tourist_1",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "user123",
			Role:      models.RoleTourist,
			Active:    true,
			CreatedAt: now(),
		},
	}
}

// SeedDemoUsers installs the demo accounts when the user collection is empty.
func SeedDemoUsers(ctx *Context) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	seedCollection(ctx, models.KeyUsers, demoUsers())
}
