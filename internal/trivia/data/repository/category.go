package repository

import (
	"context"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"

	entsql "entgo.io/ent/dialect/sql"
)

// CategoryRepositoryInterface represents the category repository interface.
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, typ string) (*structs.Category, error)
	Get(ctx context.Context, id int) (*structs.Category, error)
	List(ctx context.Context) ([]*structs.Category, error)
	Count(ctx context.Context) (int, error)
}

// categoryRepository implements the CategoryRepositoryInterface.
type categoryRepository struct {
	d *data.Data
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(d *data.Data) CategoryRepositoryInterface {
	return &categoryRepository{d: d}
}

func (r *categoryRepository) Create(ctx context.Context, typ string) (*structs.Category, error) {
	id, err := r.d.InsertID(ctx, r.d.Builder().Insert("categories").Set("type", typ))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &structs.Category{ID: id, Type: typ}, nil
}

func (r *categoryRepository) Get(ctx context.Context, id int) (*structs.Category, error) {
	q := r.d.Builder().Select("id", "type").From(entsql.Table("categories")).Where(entsql.EQ("id", id))
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, data.ErrNotFound
	}
	c := &structs.Category{}
	if err := rows.Scan(&c.ID, &c.Type); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*structs.Category, error) {
	q := r.d.Builder().Select("id", "type").From(entsql.Table("categories")).OrderBy("id")
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.Category
	for rows.Next() {
		c := &structs.Category{}
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	return r.d.Count(ctx, r.d.Builder().Select().Count().From(entsql.Table("categories")))
}
