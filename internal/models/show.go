package models

import "time"

// Show links an artist to a venue at a point in time. StartTime is kept
// as text in the fixed pattern "2006-01-02 15:04:05"; no timezone is stored.
type Show struct {
	ID        uint   `gorm:"primaryKey"`
	VenueID   uint   `gorm:"not null"`
	ArtistID  uint   `gorm:"not null"`
	StartTime string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
