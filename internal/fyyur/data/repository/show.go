package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"

	entsql "entgo.io/ent/dialect/sql"
)

// ShowRepositoryInterface represents the show repository interface.
type ShowRepositoryInterface interface {
	Create(ctx context.Context, s *structs.Show) (*structs.Show, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]*structs.ShowListing, error)
	ByVenue(ctx context.Context, venueID int) ([]*structs.ShowListing, error)
	ByArtist(ctx context.Context, artistID int) ([]*structs.ShowListing, error)
	UpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error)
	UpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error)
}

// showRepository implements the ShowRepositoryInterface.
type showRepository struct {
	d *data.Data
}

// NewShowRepository creates a new show repository.
func NewShowRepository(d *data.Data) ShowRepositoryInterface {
	return &showRepository{d: d}
}

func (r *showRepository) Create(ctx context.Context, s *structs.Show) (*structs.Show, error) {
	start := utc(s.StartTime)
	id, err := r.d.InsertID(ctx, r.d.Builder().Insert("shows").
		Set("artist_id", s.ArtistID).
		Set("venue_id", s.VenueID).
		Set("start_time", start))
	if err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}
	return &structs.Show{ID: id, ArtistID: s.ArtistID, VenueID: s.VenueID, StartTime: start}, nil
}

func (r *showRepository) Count(ctx context.Context) (int, error) {
	return r.d.Count(ctx, r.d.Builder().Select().Count().From(entsql.Table("shows")))
}

// List returns show listings ordered by start time.
func (r *showRepository) List(ctx context.Context, offset, limit int) ([]*structs.ShowListing, error) {
	q, s := r.listing()
	return r.query(ctx, q.OrderBy(s.C("start_time"), s.C("id")).Offset(offset).Limit(limit))
}

func (r *showRepository) ByVenue(ctx context.Context, venueID int) ([]*structs.ShowListing, error) {
	q, s := r.listing()
	return r.query(ctx, q.Where(entsql.EQ(s.C("venue_id"), venueID)).OrderBy(s.C("start_time")))
}

func (r *showRepository) ByArtist(ctx context.Context, artistID int) ([]*structs.ShowListing, error) {
	q, s := r.listing()
	return r.query(ctx, q.Where(entsql.EQ(s.C("artist_id"), artistID)).OrderBy(s.C("start_time")))
}

func (r *showRepository) UpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	return r.upcoming(ctx, "venue_id", now)
}

func (r *showRepository) UpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	return r.upcoming(ctx, "artist_id", now)
}

// upcoming counts shows starting after now, grouped by column.
func (r *showRepository) upcoming(ctx context.Context, column string, now time.Time) (map[int]int, error) {
	q := r.d.Builder().Select(column, entsql.Count("*")).
		From(entsql.Table("shows")).
		Where(entsql.GT("start_time", utc(now))).
		GroupBy(column)
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var id, n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

// listing joins shows with their venue and artist.
func (r *showRepository) listing() (*entsql.Selector, *entsql.SelectTable) {
	b := r.d.Builder()
	s := b.Table("shows").As("s")
	v := b.Table("venues").As("v")
	a := b.Table("artists").As("a")

	q := b.Select(
		s.C("id"), v.C("id"), v.C("name"), v.C("image_link"),
		a.C("id"), a.C("name"), a.C("image_link"), s.C("start_time"),
	).From(s).
		Join(v).On(s.C("venue_id"), v.C("id")).
		Join(a).On(s.C("artist_id"), a.C("id"))
	return q, s
}

func (r *showRepository) query(ctx context.Context, q *entsql.Selector) ([]*structs.ShowListing, error) {
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.ShowListing
	for rows.Next() {
		var l structs.ShowListing
		if err := rows.Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		l.StartTime = l.StartTime.UTC()
		out = append(out, &l)
	}
	return out, rows.Err()
}
