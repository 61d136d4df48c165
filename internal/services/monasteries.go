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

package services

import (
	"fmt"

	"github.com/monastery360/datastore/internal/models"
)

// MonasteryInput is the payload for creating a monastery.
type MonasteryInput struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Image          string              `json:"image"`
	Photos         []string            `json:"photos"`
	Contact        models.Contact      `json:"contact"`
	NearbySpots    []models.NearbySpot `json:"nearbySpots"`
	Location       *models.Location    `json:"location"`
	Established    string              `json:"established"`
	Type           string              `json:"type"`
	Highlights     []string            `json:"highlights"`
	HasVirtualTour bool                `json:"hasVirtualTour"`
	HasArchives    bool                `json:"hasArchives"`
}

// ListMonasteries returns all monastery records.
func ListMonasteries(ctx *Context) []models.Monastery {
	monasteries := []models.Monastery{}
	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	return monasteries
}

// AddMonastery appends a new monastery, stamps audit fields and logs the
// creation. Returns the created record.
func AddMonastery(ctx *Context, in MonasteryInput) (*models.Monastery, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("monastery name is required")
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	monastery := models.Monastery{
		ID:             newID("monastery"),
		Name:           in.Name,
		Description:    in.Description,
		Image:          in.Image,
		Photos:         in.Photos,
		Contact:        in.Contact,
		NearbySpots:    in.NearbySpots,
		Location:       in.Location,
		Established:    in.Established,
		Type:           in.Type,
		Highlights:     in.Highlights,
		HasVirtualTour: in.HasVirtualTour,
		HasArchives:    in.HasArchives,
		CreatedAt:      now(),
		CreatedBy:      ctx.actor().ID,
	}

	monasteries := []models.Monastery{}
	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	monasteries = append(monasteries, monastery)
	if !ctx.Store().Set(models.KeyMonasteries, monasteries) {
		return nil, ErrStoreWrite
	}
	recordActivity(ctx, models.ActivityMonasteryAdded, "Added "+monastery.Name, "")

	return &monastery, nil
}

// UpdateMonastery merges a patch over the record with the given id and stamps
// the update audit fields. A missing id yields nil with no store write.
func UpdateMonastery(ctx *Context, monasteryID string, patch models.MonasteryPatch) *models.Monastery {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	monasteries := []models.Monastery{}
	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	for i := range monasteries {
		if monasteries[i].ID != monasteryID {
			continue
		}
		patch.Apply(&monasteries[i])
		t := now()
		monasteries[i].UpdatedAt = &t
		monasteries[i].UpdatedBy = ctx.actor().ID
		if !ctx.Store().Set(models.KeyMonasteries, monasteries) {
			return nil
		}
		recordActivity(ctx, models.ActivityMonasteryUpdated, "Updated "+monasteries[i].Name, "")
		m := monasteries[i]
		return &m
	}
	return nil
}

// DeleteMonastery hard-deletes the record with the given id. Returns false
// when the id is unknown; the store is not written in that case.
func DeleteMonastery(ctx *Context, monasteryID string) bool {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	monasteries := []models.Monastery{}
	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	for i := range monasteries {
		if monasteries[i].ID != monasteryID {
			continue
		}
		name := monasteries[i].Name
		monasteries = append(monasteries[:i], monasteries[i+1:]...)
		if !ctx.Store().Set(models.KeyMonasteries, monasteries) {
			return false
		}
		recordActivity(ctx, models.ActivityMonasteryDeleted, "Deleted "+name, "")
		return true
	}
	return false
}
