package repository

import (
	"context"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"

	entsql "entgo.io/ent/dialect/sql"
)

var venueColumns = []string{
	"id", "name", "city", "state", "address", "phone", "genres",
	"website", "image_link", "facebook_link", "seeking_talent", "seeking_description",
}

// VenueRepositoryInterface represents the venue repository interface.
type VenueRepositoryInterface interface {
	Create(ctx context.Context, v *structs.Venue) (*structs.Venue, error)
	Get(ctx context.Context, id int) (*structs.Venue, error)
	Update(ctx context.Context, v *structs.Venue) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*structs.Venue, error)
	Search(ctx context.Context, term string) ([]*structs.Venue, error)
}

// venueRepository implements the VenueRepositoryInterface.
type venueRepository struct {
	d *data.Data
}

// NewVenueRepository creates a new venue repository.
func NewVenueRepository(d *data.Data) VenueRepositoryInterface {
	return &venueRepository{d: d}
}

func (r *venueRepository) Create(ctx context.Context, v *structs.Venue) (*structs.Venue, error) {
	genres, err := encodeList(v.Genres)
	if err != nil {
		return nil, err
	}
	id, err := r.d.InsertID(ctx, r.d.Builder().Insert("venues").
		Set("name", v.Name).
		Set("city", v.City).
		Set("state", v.State).
		Set("address", v.Address).
		Set("phone", v.Phone).
		Set("genres", genres).
		Set("website", v.Website).
		Set("image_link", v.ImageLink).
		Set("facebook_link", v.FacebookLink).
		Set("seeking_talent", v.SeekingTalent).
		Set("seeking_description", v.SeekingDescription))
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	created := *v
	created.ID = id
	return &created, nil
}

func (r *venueRepository) Get(ctx context.Context, id int) (*structs.Venue, error) {
	list, err := r.query(ctx, r.selector().Where(entsql.EQ("id", id)))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, data.ErrNotFound
	}
	return list[0], nil
}

func (r *venueRepository) Update(ctx context.Context, v *structs.Venue) error {
	genres, err := encodeList(v.Genres)
	if err != nil {
		return err
	}
	res, err := r.d.Exec(ctx, r.d.Builder().Update("venues").
		Set("name", v.Name).
		Set("city", v.City).
		Set("state", v.State).
		Set("address", v.Address).
		Set("phone", v.Phone).
		Set("genres", genres).
		Set("website", v.Website).
		Set("image_link", v.ImageLink).
		Set("facebook_link", v.FacebookLink).
		Set("seeking_talent", v.SeekingTalent).
		Set("seeking_description", v.SeekingDescription).
		Where(entsql.EQ("id", v.ID)))
	if err != nil {
		return fmt.Errorf("update venue %d: %w", v.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotFound
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int) error {
	res, err := r.d.Exec(ctx, r.d.Builder().Delete("venues").Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotFound
	}
	return nil
}

// List returns venues ordered by state, city and name.
func (r *venueRepository) List(ctx context.Context) ([]*structs.Venue, error) {
	return r.query(ctx, r.selector().OrderBy("state", "city", "name"))
}

func (r *venueRepository) Search(ctx context.Context, term string) ([]*structs.Venue, error) {
	return r.query(ctx, r.selector().Where(entsql.ContainsFold("name", term)).OrderBy("name"))
}

func (r *venueRepository) selector() *entsql.Selector {
	return r.d.Builder().Select(venueColumns...).From(entsql.Table("venues"))
}

func (r *venueRepository) query(ctx context.Context, q *entsql.Selector) ([]*structs.Venue, error) {
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.Venue
	for rows.Next() {
		var (
			v      structs.Venue
			genres string
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres,
			&v.Website, &v.ImageLink, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription); err != nil {
			return nil, err
		}
		if v.Genres, err = decodeList[string]("genres", genres); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
