package services_test

import (
	"testing"
	"time"

	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
)

func TestBackupRoundTrip(t *testing.T) {
	source, sourceMem := newTestContext()
	services.RegisterUser(source, validRegistration())
	services.AddMonastery(source, services.MonasteryInput{Name: "Rumtek"})
	services.AddArchive(source, services.ArchiveInput{Title: "Manuscripts"})
	services.AddEvent(source, services.EventInput{Title: "Losar", Date: "Mar 15"})

	doc := services.ExportBackup(source)
	if doc.BackupDate.IsZero() {
		t.Fatal("BackupDate not stamped")
	}

	target, targetMem := newTestContext()
	if err := services.ImportBackup(target, doc); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	for _, key := range []string{models.KeyUsers, models.KeyMonasteries, models.KeyArchives, models.KeyEvents} {
		want, _ := sourceMem.Raw(key)
		got, _ := targetMem.Raw(key)
		if want != got {
			t.Errorf("Collection %s did not survive the round trip verbatim", key)
		}
	}

	if len(services.ListUsers(target)) != 1 {
		t.Error("Users did not survive the round trip")
	}
	if len(services.ListMonasteries(target)) != 1 {
		t.Error("Monasteries did not survive the round trip")
	}
	if len(services.ListArchives(target)) != 1 {
		t.Error("Archives did not survive the round trip")
	}
	if len(services.ListEvents(target)) != 1 {
		t.Error("Events did not survive the round trip")
	}
}

func TestExportExcludesOwnLogEntry(t *testing.T) {
	ctx, _ := newTestContext()
	doc := services.ExportBackup(ctx)

	// The export is logged, but only after the snapshot was taken
	if doc.Activities == nil {
		t.Fatal("Activities key absent from backup")
	}
	for _, a := range *doc.Activities {
		if a.Type == models.ActivityDataBackup {
			t.Error("Backup contains the log entry describing itself")
		}
	}

	activities := services.ListActivities(ctx)
	if len(activities) == 0 || activities[0].Type != models.ActivityDataBackup {
		t.Error("Export was not logged")
	}
}

func TestImportPartialDocument(t *testing.T) {
	ctx, _ := newTestContext()
	services.RegisterUser(ctx, validRegistration())
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek"})

	// A document carrying only monasteries: users must survive untouched
	restored := []models.Monastery{{ID: "monastery_x", Name: "Pemayangtse"}}
	err := services.ImportBackup(ctx, models.BackupDocument{
		Monasteries: &restored,
		BackupDate:  time.Now(),
	})
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	monasteries := services.ListMonasteries(ctx)
	if len(monasteries) != 1 || monasteries[0].Name != "Pemayangtse" {
		t.Errorf("Monasteries not replaced wholesale: %+v", monasteries)
	}
	if len(services.ListUsers(ctx)) != 1 {
		t.Error("Absent users key clobbered the stored users")
	}
}

func TestImportEmptyCollectionReplaces(t *testing.T) {
	ctx, _ := newTestContext()
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek"})

	// Present-but-empty is a deliberate wipe, unlike an absent key
	empty := []models.Monastery{}
	err := services.ImportBackup(ctx, models.BackupDocument{
		Monasteries: &empty,
		BackupDate:  time.Now(),
	})
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	if len(services.ListMonasteries(ctx)) != 0 {
		t.Error("Empty collection did not replace the stored one")
	}
}

func TestImportRejectsMissingDate(t *testing.T) {
	ctx, _ := newTestContext()
	services.AddMonastery(ctx, services.MonasteryInput{Name: "Rumtek"})

	restored := []models.Monastery{}
	err := services.ImportBackup(ctx, models.BackupDocument{Monasteries: &restored})
	if err != services.ErrMalformedBackup {
		t.Fatalf("Got %v, want ErrMalformedBackup", err)
	}

	// Nothing was written before the rejection
	if len(services.ListMonasteries(ctx)) != 1 {
		t.Error("Rejected import modified the store")
	}
}

func TestImportLogsRestore(t *testing.T) {
	ctx, _ := newTestContext()

	err := services.ImportBackup(ctx, models.BackupDocument{
		BackupDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}

	activities := services.ListActivities(ctx)
	if len(activities) == 0 || activities[0].Type != models.ActivityDataRestore {
		t.Fatal("Restore was not logged")
	}
	if activities[0].Description != "Restored data from backup dated 2026-03-01" {
		t.Errorf("Description = %q", activities[0].Description)
	}
}
