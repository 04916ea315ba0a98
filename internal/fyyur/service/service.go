// Package service contains the venue, artist and show booking logic.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/data/repository"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/paging"

	"github.com/araddon/dateparse"
)

var (
	// ErrUnknownArtist is returned when a show names a missing artist
	ErrUnknownArtist = errors.New("artist does not exist")
	// ErrUnknownVenue is returned when a show names a missing venue
	ErrUnknownVenue = errors.New("venue does not exist")
	// ErrArtistUnavailable is returned when the start time is not one of the
	// artist's declared slots
	ErrArtistUnavailable = errors.New("artist not available at that time")
	// ErrInvalidTime is returned for unparseable date input
	ErrInvalidTime = errors.New("invalid date")
)

// Service books venues, artists and shows
type Service struct {
	d        *data.Data
	venues   repository.VenueRepositoryInterface
	artists  repository.ArtistRepositoryInterface
	shows    repository.ShowRepositoryInterface
	now      func() time.Time
	pageSize int
	maxSize  int
	logger   *logger.Logger
}

// Option configures a Service
type Option func(*Service)

// WithClock sets the clock used to split past and upcoming shows
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPageSize sets the default and maximum page sizes
func WithPageSize(size, max int) Option {
	return func(s *Service) {
		s.pageSize = size
		s.maxSize = max
	}
}

// New creates the booking service
func New(d *data.Data, l *logger.Logger, opts ...Option) *Service {
	s := &Service{
		d:        d,
		venues:   repository.NewVenueRepository(d),
		artists:  repository.NewArtistRepository(d),
		shows:    repository.NewShowRepository(d),
		now:      time.Now,
		pageSize: paging.DefaultPageSize,
		logger:   l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseTime reads a free form date, e.g. "2035-04-01 20:00" or
// "April 1, 2035 8:00pm", as UTC.
func ParseTime(raw string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTime, raw)
	}
	return t.UTC().Truncate(time.Second), nil
}

// split divides listings into past and upcoming relative to now
func split(listings []*structs.ShowListing, now time.Time) (past, upcoming []structs.ShowListing) {
	past, upcoming = []structs.ShowListing{}, []structs.ShowListing{}
	for _, l := range listings {
		if l.StartTime.After(now) {
			upcoming = append(upcoming, *l)
		} else {
			past = append(past, *l)
		}
	}
	return past, upcoming
}
