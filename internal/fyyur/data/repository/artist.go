package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"

	entsql "entgo.io/ent/dialect/sql"
)

var artistColumns = []string{
	"id", "name", "city", "state", "phone", "genres", "website",
	"image_link", "facebook_link", "seeking_venue", "seeking_description", "availability",
}

// ArtistRepositoryInterface represents the artist repository interface.
type ArtistRepositoryInterface interface {
	Create(ctx context.Context, a *structs.Artist) (*structs.Artist, error)
	Get(ctx context.Context, id int) (*structs.Artist, error)
	Update(ctx context.Context, a *structs.Artist) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]*structs.Artist, error)
	Search(ctx context.Context, term string) ([]*structs.Artist, error)
}

// artistRepository implements the ArtistRepositoryInterface.
type artistRepository struct {
	d *data.Data
}

// NewArtistRepository creates a new artist repository.
func NewArtistRepository(d *data.Data) ArtistRepositoryInterface {
	return &artistRepository{d: d}
}

func (r *artistRepository) Create(ctx context.Context, a *structs.Artist) (*structs.Artist, error) {
	genres, availability, err := encodeArtistLists(a)
	if err != nil {
		return nil, err
	}
	id, err := r.d.InsertID(ctx, r.d.Builder().Insert("artists").
		Set("name", a.Name).
		Set("city", a.City).
		Set("state", a.State).
		Set("phone", a.Phone).
		Set("genres", genres).
		Set("website", a.Website).
		Set("image_link", a.ImageLink).
		Set("facebook_link", a.FacebookLink).
		Set("seeking_venue", a.SeekingVenue).
		Set("seeking_description", a.SeekingDescription).
		Set("availability", availability))
	if err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	created := *a
	created.ID = id
	return &created, nil
}

func (r *artistRepository) Get(ctx context.Context, id int) (*structs.Artist, error) {
	list, err := r.query(ctx, r.selector().Where(entsql.EQ("id", id)))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, data.ErrNotFound
	}
	return list[0], nil
}

func (r *artistRepository) Update(ctx context.Context, a *structs.Artist) error {
	genres, availability, err := encodeArtistLists(a)
	if err != nil {
		return err
	}
	res, err := r.d.Exec(ctx, r.d.Builder().Update("artists").
		Set("name", a.Name).
		Set("city", a.City).
		Set("state", a.State).
		Set("phone", a.Phone).
		Set("genres", genres).
		Set("website", a.Website).
		Set("image_link", a.ImageLink).
		Set("facebook_link", a.FacebookLink).
		Set("seeking_venue", a.SeekingVenue).
		Set("seeking_description", a.SeekingDescription).
		Set("availability", availability).
		Where(entsql.EQ("id", a.ID)))
	if err != nil {
		return fmt.Errorf("update artist %d: %w", a.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotFound
	}
	return nil
}

func (r *artistRepository) Count(ctx context.Context) (int, error) {
	return r.d.Count(ctx, r.d.Builder().Select().Count().From(entsql.Table("artists")))
}

func (r *artistRepository) List(ctx context.Context, offset, limit int) ([]*structs.Artist, error) {
	return r.query(ctx, r.selector().OrderBy("id").Offset(offset).Limit(limit))
}

func (r *artistRepository) Search(ctx context.Context, term string) ([]*structs.Artist, error) {
	return r.query(ctx, r.selector().Where(entsql.ContainsFold("name", term)).OrderBy("name"))
}

func (r *artistRepository) selector() *entsql.Selector {
	return r.d.Builder().Select(artistColumns...).From(entsql.Table("artists"))
}

func (r *artistRepository) query(ctx context.Context, q *entsql.Selector) ([]*structs.Artist, error) {
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.Artist
	for rows.Next() {
		var (
			a                    structs.Artist
			genres, availability string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.Website,
			&a.ImageLink, &a.FacebookLink, &a.SeekingVenue, &a.SeekingDescription, &availability); err != nil {
			return nil, err
		}
		if a.Genres, err = decodeList[string]("genres", genres); err != nil {
			return nil, err
		}
		if a.Availability, err = decodeList[time.Time]("availability", availability); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func encodeArtistLists(a *structs.Artist) (genres, availability string, err error) {
	if genres, err = encodeList(a.Genres); err != nil {
		return "", "", err
	}
	slots := make([]time.Time, len(a.Availability))
	for i, t := range a.Availability {
		slots[i] = utc(t)
	}
	availability, err = encodeList(slots)
	return genres, availability, err
}
