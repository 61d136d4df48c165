// activity.go
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

// ListActivities returns the activity log, newest first.
func ListActivities(ctx *Context) []models.Activity {
	activities := []models.Activity{}
	ctx.Store().Get(models.KeyActivities, &activities)
	return activities
}

// RecordActivity appends one audit entry for a mutating operation performed
// outside the repository functions (which log on their own).
func RecordActivity(ctx *Context, activityType, description, details string) models.Activity {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return recordActivity(ctx, activityType, description, details)
}

// recordActivity prepends an entry and truncates the log to MaxActivities.
// Callers hold ctx.mu.
func recordActivity(ctx *Context, activityType, description, details string) models.Activity {
	activity := models.Activity{
		ID:          newID("activity"),
		Type:        activityType,
		Description: description,
		Details:     details,
		User:        ctx.actor(),
		Timestamp:   now(),
	}

	activities := []models.Activity{}
	ctx.Store().Get(models.KeyActivities, &activities)

	// Newest first, capped; the oldest entries fall off.
	activities = append([]models.Activity{activity}, activities...)
	if len(activities) > models.MaxActivities {
		activities = activities[:models.MaxActivities]
	}

	ctx.Store().Set(models.KeyActivities, activities)
	return activity
}
