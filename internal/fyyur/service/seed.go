package service

import (
	"context"
	"time"

	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
)

var seedVenues = []structs.Venue{
	{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Phone: "123-123-1234",
		Genres:        []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		Website:       "https://www.themusicalhop.com",
		FacebookLink:  "https://www.facebook.com/TheMusicalHop",
		SeekingTalent: true, SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink: "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
	},
	{
		Name: "The Dueling Pianos Bar", City: "New York", State: "NY",
		Address: "335 Delancey Street", Phone: "914-003-1132",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
	},
	{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
		Address: "34 Whiskey Moore Ave", Phone: "415-000-1234",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
	},
}

var seedArtists = []structs.Artist{
	{
		Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		Website:      "https://www.gunsnpetalsband.com",
		FacebookLink: "https://www.facebook.com/GunsNPetals",
		SeekingVenue: true, SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink: "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
	},
	{
		Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
		Genres:       []string{"Jazz"},
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432",
		Genres:    []string{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		Availability: []time.Time{
			time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
			time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC),
			time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC),
		},
	},
}

// seedShows index into seedArtists and seedVenues
var seedShows = []struct {
	artist, venue int
	start         time.Time
}{
	{0, 0, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{1, 2, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Seed inserts sample venues, artists and shows into an empty database
func (s *Service) Seed(ctx context.Context) error {
	n, err := s.artists.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info(ctx, "fyyur already seeded", "artists", n)
		return nil
	}

	return s.d.WithTx(ctx, func(ctx context.Context) error {
		venueIDs := make([]int, len(seedVenues))
		for i := range seedVenues {
			v, err := s.venues.Create(ctx, &seedVenues[i])
			if err != nil {
				return err
			}
			venueIDs[i] = v.ID
		}
		artistIDs := make([]int, len(seedArtists))
		for i := range seedArtists {
			a, err := s.artists.Create(ctx, &seedArtists[i])
			if err != nil {
				return err
			}
			artistIDs[i] = a.ID
		}
		for _, sh := range seedShows {
			show := &structs.Show{ArtistID: artistIDs[sh.artist], VenueID: venueIDs[sh.venue], StartTime: sh.start}
			if _, err := s.shows.Create(ctx, show); err != nil {
				return err
			}
		}
		s.logger.Info(ctx, "fyyur seeded", "venues", len(venueIDs), "artists", len(artistIDs), "shows", len(seedShows))
		return nil
	})
}
