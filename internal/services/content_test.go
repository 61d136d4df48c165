package services_test

import (
	"testing"

	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
)

func TestAddMonastery(t *testing.T) {
	ctx, _ := newTestContext()

	monastery, err := services.AddMonastery(ctx, services.MonasteryInput{
		Name:        "Rumtek Monastery",
		Description: "Seat of the Karmapa",
		Location:    &models.Location{Lat: 27.3286, Lng: 88.5598},
	})
	if err != nil {
		t.Fatalf("AddMonastery failed: %v", err)
	}
	if len(monastery.ID) <= len("monastery_") || monastery.ID[:10] != "monastery_" {
		t.Errorf("ID = %q, want monastery_ prefix", monastery.ID)
	}
	if monastery.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
	if monastery.CreatedBy != "system" {
		t.Errorf("CreatedBy = %q, want system actor without a session", monastery.CreatedBy)
	}

	activities := services.ListActivities(ctx)
	if len(activities) == 0 || activities[0].Type != models.ActivityMonasteryAdded {
		t.Fatal("Creation was not logged")
	}
	if activities[0].Description != "Added Rumtek Monastery" {
		t.Errorf("Description = %q", activities[0].Description)
	}
}

func TestAddMonasteryRequiresName(t *testing.T) {
	ctx, _ := newTestContext()

	if _, err := services.AddMonastery(ctx, services.MonasteryInput{}); err == nil {
		t.Fatal("Nameless monastery accepted")
	}
	if len(services.ListMonasteries(ctx)) != 0 {
		t.Error("Rejected input was stored")
	}
}

func TestUpdateMonasteryPatch(t *testing.T) {
	ctx, _ := newTestContext()
	created, _ := services.AddMonastery(ctx, services.MonasteryInput{
		Name:        "Rumtek",
		Description: "Old description",
		Established: "1966",
	})

	desc := "Rebuilt seat of the Karmapa"
	tour := true
	updated := services.UpdateMonastery(ctx, created.ID, models.MonasteryPatch{
		Description:    &desc,
		HasVirtualTour: &tour,
	})
	if updated == nil {
		t.Fatal("UpdateMonastery returned nil for a known id")
	}
	if updated.Description != desc || !updated.HasVirtualTour {
		t.Errorf("Patch fields not applied: %+v", updated)
	}
	// Fields absent from the patch survive
	if updated.Name != "Rumtek" || updated.Established != "1966" {
		t.Errorf("Untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Error("UpdatedAt not stamped")
	}
	if updated.UpdatedBy != "system" {
		t.Errorf("UpdatedBy = %q", updated.UpdatedBy)
	}
}

func TestUpdateMonasteryUnknownID(t *testing.T) {
	ctx, mem := newTestContext()
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek"})

	before, _ := mem.Raw(models.KeyMonasteries)
	name := "Ghost"
	if got := services.UpdateMonastery(ctx, "monastery_missing", models.MonasteryPatch{Name: &name}); got != nil {
		t.Fatalf("Got %+v, want nil for an unknown id", got)
	}
	after, _ := mem.Raw(models.KeyMonasteries)
	if before != after {
		t.Error("Store written for an unknown id")
	}
}

func TestDeleteMonastery(t *testing.T) {
	ctx, _ := newTestContext()
	keep, _ := services.AddMonastery(ctx, services.MonasteryInput{Name: "Pemayangtse"})
	drop, _ := services.AddMonastery(ctx, services.MonasteryInput{Name: "Phodong"})

	if !services.DeleteMonastery(ctx, drop.ID) {
		t.Fatal("DeleteMonastery failed for a known id")
	}
	if services.DeleteMonastery(ctx, drop.ID) {
		t.Error("Second delete of the same id reported success")
	}

	monasteries := services.ListMonasteries(ctx)
	if len(monasteries) != 1 || monasteries[0].ID != keep.ID {
		t.Errorf("Remaining = %+v", monasteries)
	}
	if services.ListActivities(ctx)[0].Type != models.ActivityMonasteryDeleted {
		t.Error("Deletion was not logged")
	}
}

func TestAddArchive(t *testing.T) {
	ctx, _ := newTestContext()

	archive, err := services.AddArchive(ctx, services.ArchiveInput{
		Title: "Kangyur Manuscripts",
		Type:  "manuscript",
	})
	if err != nil {
		t.Fatalf("AddArchive failed: %v", err)
	}
	if archive.ID[:8] != "archive_" {
		t.Errorf("ID = %q, want archive_ prefix", archive.ID)
	}
	if archive.Downloads != 0 {
		t.Errorf("Downloads = %d on a fresh archive", archive.Downloads)
	}

	if _, err := services.AddArchive(ctx, services.ArchiveInput{Type: "image"}); err == nil {
		t.Error("Titleless archive accepted")
	}
}

func TestUpdateArchivePatch(t *testing.T) {
	ctx, _ := newTestContext()
	created, _ := services.AddArchive(ctx, services.ArchiveInput{Title: "Murals", Type: "image"})

	title := "Phodong Murals"
	updated := services.UpdateArchive(ctx, created.ID, models.ArchivePatch{Title: &title})
	if updated == nil || updated.Title != title {
		t.Fatalf("Patch not applied: %+v", updated)
	}
	if updated.Type != "image" {
		t.Error("Untouched field changed")
	}

	if got := services.UpdateArchive(ctx, "archive_missing", models.ArchivePatch{Title: &title}); got != nil {
		t.Errorf("Got %+v for an unknown id", got)
	}
}

func TestIncrementDownloads(t *testing.T) {
	ctx, _ := newTestContext()
	created, _ := services.AddArchive(ctx, services.ArchiveInput{Title: "Thangka Scans"})
	logged := len(services.ListActivities(ctx))

	for i := 0; i < 3; i++ {
		if got := services.IncrementDownloads(ctx, created.ID); got == nil {
			t.Fatal("IncrementDownloads returned nil for a known id")
		}
	}

	archives := services.ListArchives(ctx)
	if archives[0].Downloads != 3 {
		t.Errorf("Downloads = %d, want 3", archives[0].Downloads)
	}
	// Download counts are visitor traffic, not admin mutations
	if len(services.ListActivities(ctx)) != logged {
		t.Error("Download was logged to the activity trail")
	}

	if got := services.IncrementDownloads(ctx, "archive_missing"); got != nil {
		t.Errorf("Got %+v for an unknown id", got)
	}
}

func TestAddEvent(t *testing.T) {
	ctx, _ := newTestContext()

	event, err := services.AddEvent(ctx, services.EventInput{
		Date:  "Mar 15",
		Title: "Losar Festival",
		Badge: "Festival",
		Color: "red",
	})
	if err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if event.ID[:6] != "event_" {
		t.Errorf("ID = %q, want event_ prefix", event.ID)
	}
	if services.ListActivities(ctx)[0].Description != "Added event: Losar Festival" {
		t.Error("Creation was not logged")
	}

	if _, err := services.AddEvent(ctx, services.EventInput{Date: "Apr 1"}); err == nil {
		t.Error("Titleless event accepted")
	}
}
