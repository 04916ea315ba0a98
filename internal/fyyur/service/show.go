package service

import (
	"context"
	"errors"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/paging"
)

// Shows returns one page of show listings ordered by start time
func (s *Service) Shows(ctx context.Context, params paging.Params) (paging.Page[*structs.ShowListing], error) {
	params = paging.NormalizeParams(params, s.pageSize, s.maxSize)
	return paging.Query(ctx, params, s.shows.Count, s.shows.List)
}

// CreateShow books an artist at a venue. Both must exist, and an artist with
// declared availability can only be booked into one of those slots.
func (s *Service) CreateShow(ctx context.Context, form *structs.ShowForm) (*structs.Show, error) {
	start, err := ParseTime(form.StartTime)
	if err != nil {
		return nil, err
	}

	var created *structs.Show
	err = s.d.WithTx(ctx, func(ctx context.Context) error {
		artist, err := s.artists.Get(ctx, form.ArtistID)
		if errors.Is(err, data.ErrNotFound) {
			return ErrUnknownArtist
		}
		if err != nil {
			return err
		}
		if _, err := s.venues.Get(ctx, form.VenueID); errors.Is(err, data.ErrNotFound) {
			return ErrUnknownVenue
		} else if err != nil {
			return err
		}
		if !artist.Available(start) {
			return ErrArtistUnavailable
		}

		created, err = s.shows.Create(ctx, &structs.Show{ArtistID: form.ArtistID, VenueID: form.VenueID, StartTime: start})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "show booked", "show", created.ID, "artist", created.ArtistID, "venue", created.VenueID)
	return created, nil
}
