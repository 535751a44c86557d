package booking

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/brettvs/showbill/internal/models"
	"github.com/brettvs/showbill/internal/schedule"
	"github.com/brettvs/showbill/internal/store"
)

// VenueInput carries the submitted venue form. The single Genre value is
// wrapped into a one-element genre list on write, matching the form widget.
type VenueInput struct {
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	Genre        string
	FacebookLink string
}

type ArtistInput struct {
	Name         string
	City         string
	State        string
	Phone        string
	Genre        string
	FacebookLink string
}

type ShowInput struct {
	VenueID   uint
	ArtistID  uint
	StartTime string
}

// CreateVenue refuses the create when another venue already carries the
// exact same name; the store is untouched in that case. Insert and commit
// happen inside one transaction.
func (s *Service) CreateVenue(input VenueInput) Outcome {
	if input.Name == "" {
		return Outcome{StatusFailed, "An error occurred. Venue name is required."}
	}

	existing, err := s.store.VenuesByExactName(input.Name)
	if err != nil {
		s.logger.Error("venue duplicate check", zap.String("name", input.Name), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Venue %s could not be created.", input.Name)}
	}
	if len(existing) > 0 {
		return Outcome{StatusDuplicate, fmt.Sprintf("An error occurred. Venue %s already exists!", input.Name)}
	}

	venue := models.Venue{
		Name:         input.Name,
		City:         input.City,
		State:        input.State,
		Address:      input.Address,
		Phone:        input.Phone,
		Genres:       models.GenreList{input.Genre},
		FacebookLink: input.FacebookLink,
	}
	err = s.store.Transaction(func(tx *store.Store) error {
		return tx.CreateVenue(&venue)
	})
	if err != nil {
		s.logger.Error("venue create", zap.String("name", input.Name), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Venue %s could not be created.", input.Name)}
	}
	return Outcome{StatusSuccess, fmt.Sprintf("Venue %s was successfully created!", input.Name)}
}

// EditVenue overwrites every mutable field from the submitted form, blanks
// included; there is no partial update.
func (s *Service) EditVenue(id uint, input VenueInput) Outcome {
	venue, err := s.store.GetVenue(id)
	if errors.Is(err, store.ErrNotFound) {
		return Outcome{StatusNotFound, "An error occurred. Venue could not be found."}
	}
	if err != nil {
		s.logger.Error("venue fetch for edit", zap.Uint("id", id), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Venue %s could not be edited.", input.Name)}
	}

	venue.Name = input.Name
	venue.City = input.City
	venue.State = input.State
	venue.Address = input.Address
	venue.Phone = input.Phone
	venue.Genres = models.GenreList{input.Genre}
	venue.FacebookLink = input.FacebookLink

	err = s.store.Transaction(func(tx *store.Store) error {
		return tx.SaveVenue(venue)
	})
	if err != nil {
		s.logger.Error("venue edit", zap.Uint("id", id), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Venue %s could not be edited.", input.Name)}
	}
	return Outcome{StatusSuccess, fmt.Sprintf("Venue %s was successfully edited!", input.Name)}
}

var errVenueMissing = errors.New("venue missing")

// DeleteVenue removes the venue and, in the same transaction, every show
// booked there, so no show is left pointing at a dead venue.
func (s *Service) DeleteVenue(id uint) Outcome {
	err := s.store.Transaction(func(tx *store.Store) error {
		if _, err := tx.DeleteShowsByVenue(id); err != nil {
			return err
		}
		rows, err := tx.DeleteVenue(id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errVenueMissing
		}
		return nil
	})
	if errors.Is(err, errVenueMissing) {
		return Outcome{StatusNotFound, "Venue failed to delete!"}
	}
	if err != nil {
		s.logger.Error("venue delete", zap.Uint("id", id), zap.Error(err))
		return Outcome{StatusFailed, "Venue failed to delete!"}
	}
	return Outcome{StatusSuccess, "Venue was successfully deleted!"}
}

func (s *Service) CreateArtist(input ArtistInput) Outcome {
	if input.Name == "" {
		return Outcome{StatusFailed, "An error occurred. Artist name is required."}
	}

	existing, err := s.store.ArtistsByExactName(input.Name)
	if err != nil {
		s.logger.Error("artist duplicate check", zap.String("name", input.Name), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Artist %s could not be created.", input.Name)}
	}
	if len(existing) > 0 {
		return Outcome{StatusDuplicate, fmt.Sprintf("An error occurred. Artist %s already exists!", input.Name)}
	}

	artist := models.Artist{
		Name:         input.Name,
		City:         input.City,
		State:        input.State,
		Phone:        input.Phone,
		Genres:       models.GenreList{input.Genre},
		FacebookLink: input.FacebookLink,
	}
	err = s.store.Transaction(func(tx *store.Store) error {
		return tx.CreateArtist(&artist)
	})
	if err != nil {
		s.logger.Error("artist create", zap.String("name", input.Name), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Artist %s could not be created.", input.Name)}
	}
	return Outcome{StatusSuccess, fmt.Sprintf("Artist %s was successfully created!", input.Name)}
}

func (s *Service) EditArtist(id uint, input ArtistInput) Outcome {
	artist, err := s.store.GetArtist(id)
	if errors.Is(err, store.ErrNotFound) {
		return Outcome{StatusNotFound, "An error occurred. Artist could not be found."}
	}
	if err != nil {
		s.logger.Error("artist fetch for edit", zap.Uint("id", id), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Artist %s could not be edited.", input.Name)}
	}

	artist.Name = input.Name
	artist.City = input.City
	artist.State = input.State
	artist.Phone = input.Phone
	artist.Genres = models.GenreList{input.Genre}
	artist.FacebookLink = input.FacebookLink

	err = s.store.Transaction(func(tx *store.Store) error {
		return tx.SaveArtist(artist)
	})
	if err != nil {
		s.logger.Error("artist edit", zap.Uint("id", id), zap.Error(err))
		return Outcome{StatusFailed, fmt.Sprintf("An error occurred. Artist %s could not be edited.", input.Name)}
	}
	return Outcome{StatusSuccess, fmt.Sprintf("Artist %s was successfully edited!", input.Name)}
}

// CreateShow checks the start-time pattern and both references before any
// write, so a malformed or orphaned show never reaches the store.
func (s *Service) CreateShow(input ShowInput) Outcome {
	if _, err := schedule.ParseStartTime(input.StartTime); err != nil {
		return Outcome{StatusFailed, "An error occurred. Show start time must look like YYYY-MM-DD HH:MM:SS."}
	}
	if _, err := s.store.GetVenue(input.VenueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Outcome{StatusFailed, "An error occurred. The referenced venue does not exist."}
		}
		s.logger.Error("show venue check", zap.Uint("venue_id", input.VenueID), zap.Error(err))
		return Outcome{StatusFailed, "An error occurred. The show could not be created."}
	}
	if _, err := s.store.GetArtist(input.ArtistID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Outcome{StatusFailed, "An error occurred. The referenced artist does not exist."}
		}
		s.logger.Error("show artist check", zap.Uint("artist_id", input.ArtistID), zap.Error(err))
		return Outcome{StatusFailed, "An error occurred. The show could not be created."}
	}

	show := models.Show{
		VenueID:   input.VenueID,
		ArtistID:  input.ArtistID,
		StartTime: input.StartTime,
	}
	err := s.store.Transaction(func(tx *store.Store) error {
		return tx.CreateShow(&show)
	})
	if err != nil {
		s.logger.Error("show create", zap.Error(err))
		return Outcome{StatusFailed, "An error occurred. The show could not be created."}
	}
	return Outcome{StatusSuccess, "The show was successfully created!"}
}
