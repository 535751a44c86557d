// Package store wraps all database access behind a single handle. It is
// constructed once at startup and shared by the query and mutation layers;
// nothing else in the application touches gorm directly.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/brettvs/showbill/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn inside a database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise; the session is
// released on every exit path.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) GetVenue(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (s *Store) ListVenues() ([]models.Venue, error) {
	var venues []models.Venue
	if err := s.db.Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// VenuesByExactName matches on the name column byte for byte. Used for the
// duplicate-name check on create.
func (s *Store) VenuesByExactName(name string) ([]models.Venue, error) {
	var venues []models.Venue
	if err := s.db.Where("name = ?", name).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVenuesByName matches venues whose name contains term as a
// case-insensitive substring, in id order. An empty term matches all venues.
func (s *Store) SearchVenuesByName(term string) ([]models.Venue, error) {
	var venues []models.Venue
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.Where("lower(name) LIKE ?", pattern).Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (s *Store) VenuesByIDs(ids []uint) ([]models.Venue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var venues []models.Venue
	if err := s.db.Where("id IN ?", ids).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (s *Store) CreateVenue(venue *models.Venue) error {
	return s.db.Create(venue).Error
}

func (s *Store) SaveVenue(venue *models.Venue) error {
	return s.db.Save(venue).Error
}

// DeleteVenue removes a venue row by id and reports how many rows went away.
func (s *Store) DeleteVenue(id uint) (int64, error) {
	result := s.db.Delete(&models.Venue{}, id)
	return result.RowsAffected, result.Error
}

func (s *Store) GetArtist(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (s *Store) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Store) ArtistsByExactName(name string) ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Where("name = ?", name).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Store) SearchArtistsByName(term string) ([]models.Artist, error) {
	var artists []models.Artist
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.Where("lower(name) LIKE ?", pattern).Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Store) ArtistsByIDs(ids []uint) ([]models.Artist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var artists []models.Artist
	if err := s.db.Where("id IN ?", ids).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Store) CreateArtist(artist *models.Artist) error {
	return s.db.Create(artist).Error
}

func (s *Store) SaveArtist(artist *models.Artist) error {
	return s.db.Save(artist).Error
}

func (s *Store) GetShow(id uint) (*models.Show, error) {
	var show models.Show
	if err := s.db.First(&show, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &show, nil
}

func (s *Store) ListShows() ([]models.Show, error) {
	var shows []models.Show
	if err := s.db.Order("id").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (s *Store) ShowsByVenue(venueID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := s.db.Where("venue_id = ?", venueID).Order("id").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (s *Store) ShowsByArtist(artistID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := s.db.Where("artist_id = ?", artistID).Order("id").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (s *Store) CreateShow(show *models.Show) error {
	return s.db.Create(show).Error
}

// DeleteShowsByVenue removes every show linked to the given venue.
func (s *Store) DeleteShowsByVenue(venueID uint) (int64, error) {
	result := s.db.Where("venue_id = ?", venueID).Delete(&models.Show{})
	return result.RowsAffected, result.Error
}

func (s *Store) CountVenues() (int64, error) {
	var n int64
	err := s.db.Model(&models.Venue{}).Count(&n).Error
	return n, err
}

func (s *Store) CountArtists() (int64, error) {
	var n int64
	err := s.db.Model(&models.Artist{}).Count(&n).Error
	return n, err
}

func (s *Store) CountShows() (int64, error) {
	var n int64
	err := s.db.Model(&models.Show{}).Count(&n).Error
	return n, err
}
