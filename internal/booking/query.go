package booking

import (
	"time"

	"go.uber.org/zap"

	"github.com/brettvs/showbill/internal/models"
	"github.com/brettvs/showbill/internal/schedule"
)

// VenueSearchResults carries the search hit count alongside the hits, in
// store order.
type VenueSearchResults struct {
	Count int
	Data  []models.Venue
}

type ArtistSearchResults struct {
	Count int
	Data  []models.Artist
}

// CityGroup is one distinct (city, state) pair taken verbatim from venue
// rows. No normalization: differing case or whitespace means a new group.
type CityGroup struct {
	City  string
	State string
}

// VenueDirectory is the venues listing page read model.
type VenueDirectory struct {
	Cities []CityGroup
	Venues []models.Venue
}

// ShowView is a show with both sides of the booking resolved for display.
// Resolution happens once, in a batch, when the view is assembled.
type ShowView struct {
	ID              uint
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// VenueDetail is the venue page read model: the venue plus its shows split
// into past and upcoming relative to a reference instant.
type VenueDetail struct {
	Venue              models.Venue
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	Artist             models.Artist
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// Totals are the home page headline numbers.
type Totals struct {
	Venues  int64
	Artists int64
	Shows   int64
}

func (s *Service) Totals() (Totals, error) {
	venues, err := s.store.CountVenues()
	if err != nil {
		return Totals{}, err
	}
	artists, err := s.store.CountArtists()
	if err != nil {
		return Totals{}, err
	}
	shows, err := s.store.CountShows()
	if err != nil {
		return Totals{}, err
	}
	return Totals{Venues: venues, Artists: artists, Shows: shows}, nil
}

func (s *Service) SearchVenues(term string) (VenueSearchResults, error) {
	venues, err := s.store.SearchVenuesByName(term)
	if err != nil {
		return VenueSearchResults{}, err
	}
	return VenueSearchResults{Count: len(venues), Data: venues}, nil
}

func (s *Service) SearchArtists(term string) (ArtistSearchResults, error) {
	artists, err := s.store.SearchArtistsByName(term)
	if err != nil {
		return ArtistSearchResults{}, err
	}
	return ArtistSearchResults{Count: len(artists), Data: artists}, nil
}

// VenuesByCity returns the distinct (city, state) pairs across all venues,
// in first-appearance order, plus the full venue list. The presentation
// layer groups venues under the pairs.
func (s *Service) VenuesByCity() (VenueDirectory, error) {
	venues, err := s.store.ListVenues()
	if err != nil {
		return VenueDirectory{}, err
	}
	seen := make(map[CityGroup]bool)
	var cities []CityGroup
	for _, venue := range venues {
		group := CityGroup{City: venue.City, State: venue.State}
		if !seen[group] {
			seen[group] = true
			cities = append(cities, group)
		}
	}
	return VenueDirectory{Cities: cities, Venues: venues}, nil
}

func (s *Service) ListArtists() ([]models.Artist, error) {
	return s.store.ListArtists()
}

func (s *Service) ListVenues() ([]models.Venue, error) {
	return s.store.ListVenues()
}

func (s *Service) GetVenue(id uint) (*models.Venue, error) {
	return s.store.GetVenue(id)
}

func (s *Service) GetArtist(id uint) (*models.Artist, error) {
	return s.store.GetArtist(id)
}

func (s *Service) GetShow(id uint) (*models.Show, error) {
	return s.store.GetShow(id)
}

// VenueDetail assembles the venue page for the given reference instant.
func (s *Service) VenueDetail(id uint, now time.Time) (*VenueDetail, error) {
	venue, err := s.store.GetVenue(id)
	if err != nil {
		return nil, err
	}
	shows, err := s.store.ShowsByVenue(id)
	if err != nil {
		return nil, err
	}
	past, upcoming, skipped := schedule.Partition(shows, now)
	if skipped > 0 {
		s.logger.Warn("skipped shows with malformed start time",
			zap.Uint("venue_id", id), zap.Int("skipped", skipped))
	}
	views, err := s.resolveShows(append(past[:len(past):len(past)], upcoming...))
	if err != nil {
		return nil, err
	}
	return &VenueDetail{
		Venue:              *venue,
		PastShows:          views[:len(past)],
		UpcomingShows:      views[len(past):],
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Service) ArtistDetail(id uint, now time.Time) (*ArtistDetail, error) {
	artist, err := s.store.GetArtist(id)
	if err != nil {
		return nil, err
	}
	shows, err := s.store.ShowsByArtist(id)
	if err != nil {
		return nil, err
	}
	past, upcoming, skipped := schedule.Partition(shows, now)
	if skipped > 0 {
		s.logger.Warn("skipped shows with malformed start time",
			zap.Uint("artist_id", id), zap.Int("skipped", skipped))
	}
	views, err := s.resolveShows(append(past[:len(past):len(past)], upcoming...))
	if err != nil {
		return nil, err
	}
	return &ArtistDetail{
		Artist:             *artist,
		PastShows:          views[:len(past)],
		UpcomingShows:      views[len(past):],
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ListShows returns every show with both sides resolved, in store order.
func (s *Service) ListShows() ([]ShowView, error) {
	shows, err := s.store.ListShows()
	if err != nil {
		return nil, err
	}
	return s.resolveShows(shows)
}

// resolveShows turns shows into display views with one batch fetch per
// side instead of a store round trip per show.
func (s *Service) resolveShows(shows []models.Show) ([]ShowView, error) {
	if len(shows) == 0 {
		return []ShowView{}, nil
	}

	venueIDs := make([]uint, 0, len(shows))
	artistIDs := make([]uint, 0, len(shows))
	seenVenue := make(map[uint]bool)
	seenArtist := make(map[uint]bool)
	for _, show := range shows {
		if !seenVenue[show.VenueID] {
			seenVenue[show.VenueID] = true
			venueIDs = append(venueIDs, show.VenueID)
		}
		if !seenArtist[show.ArtistID] {
			seenArtist[show.ArtistID] = true
			artistIDs = append(artistIDs, show.ArtistID)
		}
	}

	venues, err := s.store.VenuesByIDs(venueIDs)
	if err != nil {
		return nil, err
	}
	artists, err := s.store.ArtistsByIDs(artistIDs)
	if err != nil {
		return nil, err
	}
	venueByID := make(map[uint]models.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}
	artistByID := make(map[uint]models.Artist, len(artists))
	for _, a := range artists {
		artistByID[a.ID] = a
	}

	views := make([]ShowView, 0, len(shows))
	for _, show := range shows {
		venue := venueByID[show.VenueID]
		artist := artistByID[show.ArtistID]
		views = append(views, ShowView{
			ID:              show.ID,
			VenueID:         show.VenueID,
			VenueName:       venue.Name,
			VenueImageLink:  venue.ImageLink,
			ArtistID:        show.ArtistID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}
	return views, nil
}
