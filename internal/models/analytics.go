package models

import "time"

// UserStats summarizes the user collection.
type UserStats struct {
	Total        int            `json:"total"`
	ByRole       map[string]int `json:"byRole"`
	NewThisMonth int            `json:"newThisMonth"`
}

// MonasteryStats summarizes the monastery collection.
type MonasteryStats struct {
	Total            int `json:"total"`
	WithVirtualTours int `json:"withVirtualTours"`
	WithArchives     int `json:"withArchives"`
}

// ArchiveStats summarizes the archive collection.
type ArchiveStats struct {
	Total          int            `json:"total"`
	ByType         map[string]int `json:"byType"`
	TotalDownloads int            `json:"totalDownloads"`
}

// ActivityStats summarizes the activity log.
type ActivityStats struct {
	TotalActivities int `json:"totalActivities"`
	ThisWeek        int `json:"thisWeek"`
}

// AnalyticsSnapshot is a derived cache of aggregate counts. It carries no
// authority: regenerating it from the collections is always safe and has no
// side effect beyond overwriting the previous snapshot.
type AnalyticsSnapshot struct {
	UserStats      UserStats      `json:"userStats"`
	MonasteryStats MonasteryStats `json:"monasteryStats"`
	ArchiveStats   ArchiveStats   `json:"archiveStats"`
	ActivityStats  ActivityStats  `json:"activityStats"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}
