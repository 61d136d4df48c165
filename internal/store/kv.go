// kv.go
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
	"encoding/json"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// kvStore persists entries through gorm. One row per store key.
type kvStore struct {
	db *gorm.DB
}

// NewKV returns a Store backed by the given database connection.
// The connection must have been migrated for the Entry model.
func NewKV(db *gorm.DB) Store {
	return &kvStore{db: db}
}

func (s *kvStore) Get(key string, out any) bool {
	var entry Entry
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("select", "kv-read")).
		Where("entry_key = ?", key).
		First(&entry).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("store: read of %q failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(entry.Value.JSON, out); err != nil {
		// Corrupt value; swallow and let the caller's default stand.
		log.Printf("store: value under %q is unreadable: %v", key, err)
		return false
	}
	return true
}

func (s *kvStore) Set(key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: cannot serialize value for %q: %v", key, err)
		return false
	}

	entry := Entry{Key: key, Value: JSONValue{JSON: raw}}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("store: write of %q failed: %v", key, err)
		return false
	}
	return true
}

func (s *kvStore) Delete(key string) bool {
	if err := s.db.Where("entry_key = ?", key).Delete(&Entry{}).Error; err != nil {
		log.Printf("store: delete of %q failed: %v", key, err)
		return false
	}
	return true
}
