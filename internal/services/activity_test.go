package services_test

import (
	"fmt"
	"testing"

	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
)

func TestRecordActivityNewestFirst(t *testing.T) {
	ctx, _ := newTestContext()

	services.RecordActivity(ctx, models.ActivityMonasteryAdded, "first", "")
	services.RecordActivity(ctx, models.ActivityMonasteryUpdated, "second", "")

	activities := services.ListActivities(ctx)
	if len(activities) != 2 {
		t.Fatalf("Got %d activities, want 2", len(activities))
	}
	if activities[0].Description != "second" || activities[1].Description != "first" {
		t.Errorf("Order wrong: %q then %q", activities[0].Description, activities[1].Description)
	}
}

func TestRecordActivitySnapshotsActor(t *testing.T) {
	ctx, _ := newTestContext()

	// Without a session the system placeholder is recorded
	a := services.RecordActivity(ctx, models.ActivityDataBackup, "backup", "")
	if a.User.ID != "system" {
		t.Errorf("Actor = %q, want system", a.User.ID)
	}

	user, _ := services.RegisterUser(ctx, validRegistration())
	a = services.RecordActivity(ctx, models.ActivityMonasteryAdded, "added", "")
	if a.User.ID != user.ID {
		t.Errorf("Actor = %q, want session user %q", a.User.ID, user.ID)
	}
}

func TestActivityLogBounded(t *testing.T) {
	ctx, _ := newTestContext()

	for i := 0; i < models.MaxActivities+25; i++ {
		services.RecordActivity(ctx, models.ActivityEventAdded, fmt.Sprintf("entry %d", i), "")
	}

	activities := services.ListActivities(ctx)
	if len(activities) != models.MaxActivities {
		t.Fatalf("Got %d activities, want cap of %d", len(activities), models.MaxActivities)
	}

	// The newest entry survives at the head, the oldest fell off the tail
	wantNewest := fmt.Sprintf("entry %d", models.MaxActivities+24)
	if activities[0].Description != wantNewest {
		t.Errorf("Head = %q, want %q", activities[0].Description, wantNewest)
	}
	wantOldest := fmt.Sprintf("entry %d", 25)
	if activities[len(activities)-1].Description != wantOldest {
		t.Errorf("Tail = %q, want %q", activities[len(activities)-1].Description, wantOldest)
	}
}

func TestActivityIDsDistinct(t *testing.T) {
	ctx, _ := newTestContext()

	// The original minted timestamp ids, which collide in a fast loop.
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		a := services.RecordActivity(ctx, models.ActivityEventAdded, "entry", "")
		if seen[a.ID] {
			t.Fatalf("Duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
