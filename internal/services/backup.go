// backup.go
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

import "github.com/monastery360/datastore/internal/models"

// ExportBackup snapshots every collection into one document. The snapshot is
// taken before the backup activity is logged, so the log entry never appears
// inside the backup it describes.
func ExportBackup(ctx *Context) models.BackupDocument {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	monasteries := []models.Monastery{}
	archives := []models.Archive{}
	users := []models.User{}
	events := []models.Event{}
	activities := []models.Activity{}
	var analytics models.AnalyticsSnapshot

	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	ctx.Store().Get(models.KeyArchives, &archives)
	ctx.Store().Get(models.KeyUsers, &users)
	ctx.Store().Get(models.KeyEvents, &events)
	ctx.Store().Get(models.KeyActivities, &activities)
	ctx.Store().Get(models.KeyAnalytics, &analytics)

	doc := models.BackupDocument{
		Monasteries: &monasteries,
		Archives:    &archives,
		Users:       &users,
		Events:      &events,
		Activities:  &activities,
		Analytics:   &analytics,
		BackupDate:  now(),
	}

	recordActivity(ctx, models.ActivityDataBackup, "Created data backup", "")
	return doc
}

// ImportBackup restores collections from a backup document. Each collection
// present in the document wholesale replaces the stored one; collections
// absent from the document are left untouched. A document without a backup
// date is rejected before anything is written.
func ImportBackup(ctx *Context, doc models.BackupDocument) error {
	if doc.BackupDate.IsZero() {
		return ErrMalformedBackup
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if doc.Monasteries != nil {
		if !ctx.Store().Set(models.KeyMonasteries, *doc.Monasteries) {
			return ErrStoreWrite
		}
	}
	if doc.Archives != nil {
		if !ctx.Store().Set(models.KeyArchives, *doc.Archives) {
			return ErrStoreWrite
		}
	}
	if doc.Users != nil {
		if !ctx.Store().Set(models.KeyUsers, *doc.Users) {
			return ErrStoreWrite
		}
	}
	if doc.Events != nil {
		if !ctx.Store().Set(models.KeyEvents, *doc.Events) {
			return ErrStoreWrite
		}
	}
	if doc.Activities != nil {
		if !ctx.Store().Set(models.KeyActivities, *doc.Activities) {
			return ErrStoreWrite
		}
	}
	if doc.Analytics != nil {
		if !ctx.Store().Set(models.KeyAnalytics, *doc.Analytics) {
			return ErrStoreWrite
		}
	}

	recordActivity(ctx, models.ActivityDataRestore,
		"Restored data from backup dated "+doc.BackupDate.Format("2006-01-02"), "")
	return nil
}
