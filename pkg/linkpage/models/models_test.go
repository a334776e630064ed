package models

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestProfileWithLinksAndClicks(t *testing.T) {
	db := setupTestDB(t)

	profile := Profile{
		Email: "owner@example.com",
		Slug:  "u-owner",
		Links: []Link{
			{Title: "Site", URL: "https://example.com"},
			{Title: "Store", URL: "https://store.example.com"},
		},
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile with links: %v", err)
	}

	click := Click{LinkID: profile.Links[0].ID, Referrer: "Direct"}
	if err := db.Create(&click).Error; err != nil {
		t.Fatalf("Failed to create click: %v", err)
	}
	if click.Timestamp.IsZero() {
		t.Error("Expected click timestamp assigned on insert")
	}

	var loaded Profile
	err := db.Preload("Links.Clicks").Where("slug = ?", "u-owner").First(&loaded).Error
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	if len(loaded.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(loaded.Links))
	}
	if len(loaded.Links[0].Clicks) != 1 {
		t.Errorf("Expected 1 click on first link, got %d", len(loaded.Links[0].Clicks))
	}
}

func TestProfileEmailUnique(t *testing.T) {
	db := setupTestDB(t)

	first := Profile{Email: "owner@example.com", Slug: "u-one"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create first profile: %v", err)
	}

	second := Profile{Email: "owner@example.com", Slug: "u-two"}
	if err := db.Create(&second).Error; err == nil {
		t.Error("Expected unique constraint violation on duplicate email")
	}
}

func TestProfileSlugUnique(t *testing.T) {
	db := setupTestDB(t)

	first := Profile{Email: "one@example.com", Slug: "u-same"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create first profile: %v", err)
	}

	second := Profile{Email: "two@example.com", Slug: "u-same"}
	if err := db.Create(&second).Error; err == nil {
		t.Error("Expected unique constraint violation on duplicate slug")
	}
}

func TestClickExplicitTimestampKept(t *testing.T) {
	db := setupTestDB(t)

	profile := Profile{Email: "owner@example.com", Slug: "u-owner", Links: []Link{{Title: "Site", URL: "https://example.com"}}}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	when := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	click := Click{LinkID: profile.Links[0].ID, Timestamp: when}
	if err := db.Create(&click).Error; err != nil {
		t.Fatalf("Failed to create click: %v", err)
	}

	var loaded Click
	db.First(&loaded, click.ID)
	if !loaded.Timestamp.Equal(when) {
		t.Errorf("Expected explicit timestamp kept, got %v", loaded.Timestamp)
	}
}
