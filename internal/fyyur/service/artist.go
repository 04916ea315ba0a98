package service

import (
	"context"
	"time"

	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/paging"
)

// Artists returns one page of artists. Past the end the page is empty.
func (s *Service) Artists(ctx context.Context, params paging.Params) (paging.Page[structs.Summary], error) {
	params = paging.NormalizeParams(params, s.pageSize, s.maxSize)

	upcoming, err := s.shows.UpcomingByArtist(ctx, s.now())
	if err != nil {
		return paging.Page[structs.Summary]{}, err
	}
	return paging.Query(ctx, params, s.artists.Count,
		func(ctx context.Context, offset, limit int) ([]structs.Summary, error) {
			artists, err := s.artists.List(ctx, offset, limit)
			if err != nil {
				return nil, err
			}
			out := make([]structs.Summary, len(artists))
			for i, a := range artists {
				out[i] = structs.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]}
			}
			return out, nil
		},
	)
}

// SearchArtists finds artists whose name contains term, ignoring case
func (s *Service) SearchArtists(ctx context.Context, term string) (*structs.SearchResult, error) {
	artists, err := s.artists.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.shows.UpcomingByArtist(ctx, s.now())
	if err != nil {
		return nil, err
	}

	res := &structs.SearchResult{Count: len(artists), Data: make([]structs.Summary, len(artists))}
	for i, a := range artists {
		res.Data[i] = structs.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]}
	}
	return res, nil
}

// GetArtist returns an artist or data.ErrNotFound
func (s *Service) GetArtist(ctx context.Context, id int) (*structs.Artist, error) {
	return s.artists.Get(ctx, id)
}

// ArtistDetail returns an artist with its past and upcoming shows
func (s *Service) ArtistDetail(ctx context.Context, id int) (*structs.ArtistDetail, error) {
	a, err := s.artists.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	listings, err := s.shows.ByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := split(listings, s.now())
	return &structs.ArtistDetail{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// CreateArtist lists a new artist
func (s *Service) CreateArtist(ctx context.Context, form *structs.ArtistForm) (*structs.Artist, error) {
	a, err := artistFromForm(form)
	if err != nil {
		return nil, err
	}
	created, err := s.artists.Create(ctx, a)
	if err != nil {
		s.logger.Error(ctx, "failed to create artist", "name", form.Name, "error", err)
		return nil, err
	}
	return created, nil
}

// UpdateArtist replaces the editable fields of an artist
func (s *Service) UpdateArtist(ctx context.Context, id int, form *structs.ArtistForm) (*structs.Artist, error) {
	a, err := artistFromForm(form)
	if err != nil {
		return nil, err
	}
	a.ID = id
	if err := s.artists.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func artistFromForm(f *structs.ArtistForm) (*structs.Artist, error) {
	var slots []time.Time
	for _, raw := range f.Availability {
		if raw == "" {
			continue
		}
		t, err := ParseTime(raw)
		if err != nil {
			return nil, err
		}
		slots = append(slots, t)
	}
	return &structs.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             structs.SplitGenres(f.Genres),
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		Availability:       slots,
	}, nil
}
