package models

import "time"

// Click is an immutable fact: this link was visited at this time from
// this origin. Rows are append-only and never updated; they go away only
// when the owning link is deleted.
//
// IP, UserAgent, City and Country are best-effort and may be empty.
// Referrer holds the classified platform label, not the raw header.
type Click struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LinkID    uint      `gorm:"not null;index" json:"linkId"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
}
