package models

import "time"

// BackupDocument is the single-file export/import format. Collection fields
// are pointers so that a key absent from the document can be told apart from
// an empty collection: absent keys are left untouched on import, present keys
// wholesale replace the stored collection.
type BackupDocument struct {
	Monasteries *[]Monastery       `json:"monasteries,omitempty"`
	Archives    *[]Archive         `json:"archives,omitempty"`
	Users       *[]User            `json:"users,omitempty"`
	Events      *[]Event           `json:"events,omitempty"`
	Activities  *[]Activity        `json:"activities,omitempty"`
	Analytics   *AnalyticsSnapshot `json:"analytics,omitempty"`
	BackupDate  time.Time          `json:"backupDate"`
}
