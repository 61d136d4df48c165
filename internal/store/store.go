// store.go
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

package store

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Store is the sole boundary to durable state. It mirrors the localStorage
// contract of the original web app: reads fall back to the caller's default
// and writes report success as a boolean. No method ever panics or returns an
// error; failures are logged and degraded so a data problem can never break
// the callers above.
type Store interface {
	// Get unmarshals the value stored under key into out (a pointer).
	// When the key is absent or the stored value cannot be parsed, out is
	// left untouched (the caller's pre-set default survives) and Get
	// returns false.
	Get(key string, out any) bool

	// Set serializes value and persists it under key, replacing any
	// previous value. It returns false on serialization or persistence
	// failure.
	Set(key string, value any) bool

	// Delete removes the value stored under key. Deleting an absent key
	// succeeds.
	Delete(key string) bool
}

// JSONValue wraps datatypes.JSON so the value column maps to a native JSON
// type on every supported dialect (SQL Server has none and gets NVARCHAR).
type JSONValue struct {
	datatypes.JSON
}

// Value promotes the embedded JSON's Value method.
func (j JSONValue) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method.
func (j *JSONValue) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType selects the column type per dialect.
func (JSONValue) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// Entry is one persisted key/value pair. The whole durable state of the
// system is rows of this table.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:255;column:entry_key"`
	Value     JSONValue `gorm:"column:entry_value"`
	CreatedAt int64     `gorm:"autoCreateTime"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

// TableName overrides the table name for Entry.
func (Entry) TableName() string {
	return "store_entries"
}
