// analytics.go
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

// GetAnalytics returns the cached snapshot, or nil when none was generated.
func GetAnalytics(ctx *Context) *models.AnalyticsSnapshot {
	var snapshot models.AnalyticsSnapshot
	if !ctx.Store().Get(models.KeyAnalytics, &snapshot) {
		return nil
	}
	return &snapshot
}

// GenerateAnalytics scans users, monasteries, archives and activities in full
// and persists a fresh snapshot. A pure derived view: the same collections
// and the same wall-clock instant always reproduce the same snapshot.
func GenerateAnalytics(ctx *Context) models.AnalyticsSnapshot {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	monasteries := []models.Monastery{}
	archives := []models.Archive{}
	activities := []models.Activity{}
	ctx.Store().Get(models.KeyUsers, &users)
	ctx.Store().Get(models.KeyMonasteries, &monasteries)
	ctx.Store().Get(models.KeyArchives, &archives)
	ctx.Store().Get(models.KeyActivities, &activities)

	generatedAt := now()
	snapshot := models.AnalyticsSnapshot{
		UserStats: models.UserStats{
			Total:  len(users),
			ByRole: map[string]int{},
		},
		MonasteryStats: models.MonasteryStats{
			Total: len(monasteries),
		},
		ArchiveStats: models.ArchiveStats{
			Total:  len(archives),
			ByType: map[string]int{},
		},
		ActivityStats: models.ActivityStats{
			TotalActivities: len(activities),
		},
		GeneratedAt: generatedAt,
	}

	for _, u := range users {
		snapshot.UserStats.ByRole[u.Role]++
		// "New this month" means the same calendar month, not the last 30 days.
		if u.CreatedAt.Month() == generatedAt.Month() && u.CreatedAt.Year() == generatedAt.Year() {
			snapshot.UserStats.NewThisMonth++
		}
	}

	for _, m := range monasteries {
		if m.HasVirtualTour {
			snapshot.MonasteryStats.WithVirtualTours++
		}
		if m.HasArchives {
			snapshot.MonasteryStats.WithArchives++
		}
	}

	for _, a := range archives {
		snapshot.ArchiveStats.ByType[a.Type]++
		snapshot.ArchiveStats.TotalDownloads += a.Downloads
	}

	weekAgo := generatedAt.AddDate(0, 0, -7)
	for _, a := range activities {
		if a.Timestamp.After(weekAgo) {
			snapshot.ActivityStats.ThisWeek++
		}
	}

	ctx.Store().Set(models.KeyAnalytics, snapshot)
	return snapshot
}
