package models

import (
	"time"

	"gorm.io/gorm"
)

// Default page theming applied when a profile is created without
// explicit colors.
const (
	DefaultBgType    = "color"
	DefaultBgValue   = "#f5f5f5"
	DefaultNameColor = "#1e293b"
	DefaultBioColor  = "#64748b"
	DefaultLinkColor = "#2563eb"
)

// Profile represents a user-owned public page listing links.
// Identity itself lives in an external provider; the email here is the
// join key between that provider and the profile.
type Profile struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Bio       string         `json:"bio"`
	ImageURL  string         `json:"imageUrl"`
	BgType    string         `json:"bgType"`
	BgValue   string         `json:"bgValue"`
	NameColor string         `json:"nameColor"`
	BioColor  string         `json:"bioColor"`
	LinkColor string         `json:"linkColor"`
	IsOwner   bool           `json:"isOwner"`

	Links []Link `gorm:"foreignKey:ProfileID" json:"links,omitempty"`
}
