package models

import "time"

// Activity type tags recorded by mutating operations.
const (
	ActivityMonasteryAdded   = "monastery_added"
	ActivityMonasteryUpdated = "monastery_updated"
	ActivityMonasteryDeleted = "monastery_deleted"
	ActivityArchiveAdded     = "archive_added"
	ActivityArchiveUpdated   = "archive_updated"
	ActivityEventAdded       = "event_added"
	ActivityUserRegistered   = "user_registered"
	ActivityUserRoleUpdated  = "user_role_updated"
	ActivityUserDeactivated  = "user_deactivated"
	ActivityDataBackup       = "data_backup"
	ActivityDataRestore      = "data_restore"
)

// MaxActivities caps the activity log; the oldest entries are evicted.
const MaxActivities = 100

// Activity is one audit-trail entry. User is a snapshot of the session user
// taken at write time, not a reference into the user collection.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Details     string    `json:"details,omitempty"`
	User        User      `json:"user"`
	Timestamp   time.Time `json:"timestamp"`
}
