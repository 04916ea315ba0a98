package service

import (
	"context"

	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
)

// Venues groups every venue by city and state
func (s *Service) Venues(ctx context.Context) ([]structs.Area, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.shows.UpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	areas := []structs.Area{}
	index := map[[2]string]int{}
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, structs.Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, structs.Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return areas, nil
}

// SearchVenues finds venues whose name contains term, ignoring case
func (s *Service) SearchVenues(ctx context.Context, term string) (*structs.SearchResult, error) {
	venues, err := s.venues.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.shows.UpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	res := &structs.SearchResult{Count: len(venues), Data: make([]structs.Summary, len(venues))}
	for i, v := range venues {
		res.Data[i] = structs.Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]}
	}
	return res, nil
}

// GetVenue returns a venue or data.ErrNotFound
func (s *Service) GetVenue(ctx context.Context, id int) (*structs.Venue, error) {
	return s.venues.Get(ctx, id)
}

// VenueDetail returns a venue with its past and upcoming shows
func (s *Service) VenueDetail(ctx context.Context, id int) (*structs.VenueDetail, error) {
	v, err := s.venues.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	listings, err := s.shows.ByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := split(listings, s.now())
	return &structs.VenueDetail{
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// CreateVenue lists a new venue
func (s *Service) CreateVenue(ctx context.Context, form *structs.VenueForm) (*structs.Venue, error) {
	v, err := s.venues.Create(ctx, form.Venue())
	if err != nil {
		s.logger.Error(ctx, "failed to create venue", "name", form.Name, "error", err)
		return nil, err
	}
	return v, nil
}

// UpdateVenue replaces the editable fields of a venue
func (s *Service) UpdateVenue(ctx context.Context, id int, form *structs.VenueForm) (*structs.Venue, error) {
	v := form.Venue()
	v.ID = id
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVenue removes a venue and, through the foreign key, its shows
func (s *Service) DeleteVenue(ctx context.Context, id int) error {
	return s.venues.Delete(ctx, id)
}
