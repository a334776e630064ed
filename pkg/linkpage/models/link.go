package models

import "time"

// Link represents one outbound URL entry on a profile.
// Links are owned exclusively by one profile and are replaced wholesale
// when the profile's link set is rewritten.
type Link struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ProfileID uint      `gorm:"not null;index" json:"profileId"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `gorm:"not null" json:"url"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	TextColor string    `json:"textColor"`

	Clicks []Click `gorm:"foreignKey:LinkID" json:"clicks,omitempty"`
}
