package models

import "time"

type Venue struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	City         string    `gorm:"size:120"`
	State        string    `gorm:"size:120"`
	Address      string    `gorm:"size:120"`
	Phone        string    `gorm:"size:120"`
	ImageLink    string    `gorm:"size:500"`
	FacebookLink string    `gorm:"size:120"`
	Genres       GenreList `gorm:"type:text"`
	Shows        []Show    `gorm:"foreignKey:VenueID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
