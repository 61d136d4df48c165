package store_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/monastery360/datastore/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&store.Entry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestKVSetGet(t *testing.T) {
	kv := store.NewKV(setupTestDB(t))

	if !kv.Set("sample", sample{Name: "rumtek", Count: 3}) {
		t.Fatal("Set failed")
	}

	var got sample
	if !kv.Get("sample", &got) {
		t.Fatal("Get reported absent after Set")
	}
	if got.Name != "rumtek" || got.Count != 3 {
		t.Errorf("Got %+v, want {rumtek 3}", got)
	}
}

func TestKVOverwrite(t *testing.T) {
	kv := store.NewKV(setupTestDB(t))

	kv.Set("sample", sample{Name: "first"})
	if !kv.Set("sample", sample{Name: "second"}) {
		t.Fatal("Overwrite failed")
	}

	var got sample
	kv.Get("sample", &got)
	if got.Name != "second" {
		t.Errorf("Got %q after overwrite, want %q", got.Name, "second")
	}
}

func TestKVAbsentKeyLeavesDefault(t *testing.T) {
	kv := store.NewKV(setupTestDB(t))

	got := sample{Name: "default"}
	if kv.Get("missing", &got) {
		t.Fatal("Get reported present for a missing key")
	}
	if got.Name != "default" {
		t.Errorf("Default was clobbered: %+v", got)
	}
}

func TestKVCorruptValueLeavesDefault(t *testing.T) {
	db := setupTestDB(t)
	kv := store.NewKV(db)

	// Plant a value that does not parse as the caller's type
	if err := db.Exec(
		"INSERT INTO store_entries (entry_key, entry_value, created_at, updated_at) VALUES (?, ?, 0, 0)",
		"bad", `"just a string"`,
	).Error; err != nil {
		t.Fatalf("Failed to plant corrupt value: %v", err)
	}

	got := sample{Name: "default"}
	if kv.Get("bad", &got) {
		t.Fatal("Get reported success for an unreadable value")
	}
	if got.Name != "default" {
		t.Errorf("Default was clobbered: %+v", got)
	}
}

func TestKVDelete(t *testing.T) {
	kv := store.NewKV(setupTestDB(t))

	kv.Set("sample", sample{Name: "x"})
	if !kv.Delete("sample") {
		t.Fatal("Delete failed")
	}
	var got sample
	if kv.Get("sample", &got) {
		t.Fatal("Get reported present after Delete")
	}

	// Deleting an absent key succeeds, like localStorage.removeItem
	if !kv.Delete("never-existed") {
		t.Fatal("Delete of absent key reported failure")
	}
}

func TestMemoryStoreMatchesKVContract(t *testing.T) {
	mem := store.NewMemory()

	if !mem.Set("sample", sample{Name: "a", Count: 1}) {
		t.Fatal("Set failed")
	}
	var got sample
	if !mem.Get("sample", &got) || got.Name != "a" {
		t.Fatalf("Got %+v, want {a 1}", got)
	}

	mem.SetRaw("bad", "{not json")
	got = sample{Name: "default"}
	if mem.Get("bad", &got) {
		t.Fatal("Get reported success for an unreadable value")
	}
	if got.Name != "default" {
		t.Errorf("Default was clobbered: %+v", got)
	}

	mem.Delete("sample")
	if _, ok := mem.Raw("sample"); ok {
		t.Fatal("Raw found a deleted key")
	}

	mem.FailWrites = true
	if mem.Set("sample", sample{}) {
		t.Fatal("Set succeeded with FailWrites")
	}
}
