package models

import "time"

type Artist struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	City         string    `gorm:"size:120"`
	State        string    `gorm:"size:120"`
	Phone        string    `gorm:"size:120"`
	Genres       GenreList `gorm:"type:text"`
	ImageLink    string    `gorm:"size:500"`
	FacebookLink string    `gorm:"size:120"`
	Shows        []Show    `gorm:"foreignKey:ArtistID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
