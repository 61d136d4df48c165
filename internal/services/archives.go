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

package services

import (
	"fmt"

	"github.com/monastery360/datastore/internal/models"
)

// ArchiveInput is the payload for creating an archive.
type ArchiveInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	FileURL     string `json:"fileUrl"`
	Type        string `json:"type"`
}

// ListArchives returns all archive records.
func ListArchives(ctx *Context) []models.Archive {
	archives := []models.Archive{}
	ctx.Store().Get(models.KeyArchives, &archives)
	return archives
}

// AddArchive appends a new archive record and logs the creation.
func AddArchive(ctx *Context, in ArchiveInput) (*models.Archive, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("archive title is required")
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	archive := models.Archive{
		ID:          newID("archive"),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		FileURL:     in.FileURL,
		Type:        in.Type,
		CreatedAt:   now(),
		CreatedBy:   ctx.actor().ID,
	}

	archives := []models.Archive{}
	ctx.Store().Get(models.KeyArchives, &archives)
	archives = append(archives, archive)
	if !ctx.Store().Set(models.KeyArchives, archives) {
		return nil, ErrStoreWrite
	}
	recordActivity(ctx, models.ActivityArchiveAdded, "Added archive: "+archive.Title, "")

	return &archive, nil
}

// UpdateArchive merges a patch over the archive with the given id. A missing
// id yields nil with no store write.
func UpdateArchive(ctx *Context, archiveID string, patch models.ArchivePatch) *models.Archive {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	archives := []models.Archive{}
	ctx.Store().Get(models.KeyArchives, &archives)
	for i := range archives {
		if archives[i].ID != archiveID {
			continue
		}
		patch.Apply(&archives[i])
		t := now()
		archives[i].UpdatedAt = &t
		archives[i].UpdatedBy = ctx.actor().ID
		if !ctx.Store().Set(models.KeyArchives, archives) {
			return nil
		}
		recordActivity(ctx, models.ActivityArchiveUpdated, "Updated archive: "+archives[i].Title, "")
		a := archives[i]
		return &a
	}
	return nil
}

// IncrementDownloads bumps the download counter consumed by analytics. Not an
// admin mutation, so it is not logged to the activity trail.
func IncrementDownloads(ctx *Context, archiveID string) *models.Archive {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	archives := []models.Archive{}
	ctx.Store().Get(models.KeyArchives, &archives)
	for i := range archives {
		if archives[i].ID != archiveID {
			continue
		}
		archives[i].Downloads++
		if !ctx.Store().Set(models.KeyArchives, archives) {
			return nil
		}
		a := archives[i]
		return &a
	}
	return nil
}
