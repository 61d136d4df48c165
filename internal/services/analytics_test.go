package services_test

import (
	"testing"

	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
)

func TestGetAnalyticsAbsent(t *testing.T) {
	ctx, _ := newTestContext()
	if services.GetAnalytics(ctx) != nil {
		t.Error("Expected nil before any snapshot was generated")
	}
}

func TestGenerateAnalyticsEmpty(t *testing.T) {
	ctx, _ := newTestContext()

	snapshot := services.GenerateAnalytics(ctx)

	if snapshot.UserStats.Total != 0 || snapshot.MonasteryStats.Total != 0 ||
		snapshot.ArchiveStats.Total != 0 || snapshot.ActivityStats.TotalActivities != 0 {
		t.Errorf("Empty collections produced nonzero counts: %+v", snapshot)
	}
	if snapshot.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}

	// The snapshot is persisted
	if services.GetAnalytics(ctx) == nil {
		t.Error("Snapshot was not stored")
	}
}

func TestGenerateAnalyticsCounts(t *testing.T) {
	ctx, _ := newTestContext()

	// Two users in different roles, both created now (this month)
	services.RegisterUser(ctx, validRegistration())
	second := validRegistration()
	second.Email = "norbu@example.com"
	second.Role = models.RoleMonk
	services.RegisterUser(ctx, second)

	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek", HasVirtualTour: true, HasArchives: true})
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Phodong"})

	archive, _ := services.AddArchive(ctx, services.ArchiveInput{Title: "Manuscripts", Type: "manuscript"})
	services.AddArchive(ctx, services.ArchiveInput{Title: "Murals", Type: "image"})
	services.IncrementDownloads(ctx, archive.ID)
	services.IncrementDownloads(ctx, archive.ID)

	snapshot := services.GenerateAnalytics(ctx)

	if snapshot.UserStats.Total != 2 {
		t.Errorf("UserStats.Total = %d, want 2", snapshot.UserStats.Total)
	}
	if snapshot.UserStats.ByRole[models.RoleTourist] != 1 || snapshot.UserStats.ByRole[models.RoleMonk] != 1 {
		t.Errorf("ByRole = %v", snapshot.UserStats.ByRole)
	}
	if snapshot.UserStats.NewThisMonth != 2 {
		t.Errorf("NewThisMonth = %d, want 2", snapshot.UserStats.NewThisMonth)
	}

	if snapshot.MonasteryStats.Total != 2 || snapshot.MonasteryStats.WithVirtualTours != 1 ||
		snapshot.MonasteryStats.WithArchives != 1 {
		t.Errorf("MonasteryStats = %+v", snapshot.MonasteryStats)
	}

	if snapshot.ArchiveStats.Total != 2 {
		t.Errorf("ArchiveStats.Total = %d, want 2", snapshot.ArchiveStats.Total)
	}
	if snapshot.ArchiveStats.ByType["manuscript"] != 1 || snapshot.ArchiveStats.ByType["image"] != 1 {
		t.Errorf("ByType = %v", snapshot.ArchiveStats.ByType)
	}
	if snapshot.ArchiveStats.TotalDownloads != 2 {
		t.Errorf("TotalDownloads = %d, want 2", snapshot.ArchiveStats.TotalDownloads)
	}

	// Every mutation above was just logged, so all of them fall in this week
	if snapshot.ActivityStats.TotalActivities != snapshot.ActivityStats.ThisWeek {
		t.Errorf("ActivityStats = %+v", snapshot.ActivityStats)
	}
	if snapshot.ActivityStats.TotalActivities == 0 {
		t.Error("No activities counted")
	}
}

func TestGenerateAnalyticsOverwrites(t *testing.T) {
	ctx, _ := newTestContext()

	first := services.GenerateAnalytics(ctx)
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek"})
	second := services.GenerateAnalytics(ctx)

	if first.MonasteryStats.Total != 0 || second.MonasteryStats.Total != 1 {
		t.Errorf("Regeneration did not track the collection: %d then %d",
			first.MonasteryStats.Total, second.MonasteryStats.Total)
	}

	stored := services.GetAnalytics(ctx)
	if stored == nil || stored.MonasteryStats.Total != 1 {
		t.Error("Stored snapshot is not the latest one")
	}
}
