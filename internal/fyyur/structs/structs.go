package structs

import "time"

// Venue hosts shows
type Venue struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// Artist performs at shows. An empty Availability accepts any start time.
type Artist struct {
	ID                 int         `json:"id"`
	Name               string      `json:"name"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Genres             []string    `json:"genres"`
	Website            string      `json:"website"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	Availability       []time.Time `json:"availability"`
}

// Available reports whether the artist can play at t
func (a *Artist) Available(t time.Time) bool {
	if len(a.Availability) == 0 {
		return true
	}
	for _, slot := range a.Availability {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}

// Show books an artist at a venue
type Show struct {
	ID        int       `json:"id"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show joined with its artist and venue
type ShowListing struct {
	ShowID          int       `json:"show_id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Summary is a name with its upcoming show count
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups venues by city and state
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the answer to a name search
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// VenueDetail is a venue with its shows split around now
type VenueDetail struct {
	Venue
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split around now
type ArtistDetail struct {
	Artist
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}
