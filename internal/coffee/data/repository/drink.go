package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/coffee/structs"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrDuplicateTitle is returned when a drink title is already taken
var ErrDuplicateTitle = errors.New("a drink with this title already exists")

// DrinkRepositoryInterface represents the drink repository interface.
type DrinkRepositoryInterface interface {
	Create(ctx context.Context, d *structs.Drink) (*structs.Drink, error)
	Get(ctx context.Context, id int) (*structs.Drink, error)
	Update(ctx context.Context, d *structs.Drink) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]*structs.Drink, error)
}

// drinkRepository implements the DrinkRepositoryInterface.
type drinkRepository struct {
	d *data.Data
}

// NewDrinkRepository creates a new drink repository.
func NewDrinkRepository(d *data.Data) DrinkRepositoryInterface {
	return &drinkRepository{d: d}
}

// Create inserts a drink. Titles are unique; the check and insert share a
// transaction so both dialects report ErrDuplicateTitle the same way.
func (r *drinkRepository) Create(ctx context.Context, drink *structs.Drink) (*structs.Drink, error) {
	recipe, err := json.Marshal(drink.Recipe)
	if err != nil {
		return nil, err
	}

	created := drink.Long()
	err = r.d.WithTx(ctx, func(ctx context.Context) error {
		if err := r.ensureTitleFree(ctx, drink.Title, 0); err != nil {
			return err
		}
		id, err := r.d.InsertID(ctx, r.d.Builder().Insert("drinks").
			Set("title", drink.Title).
			Set("recipe", string(recipe)))
		if err != nil {
			return fmt.Errorf("create drink: %w", err)
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *drinkRepository) Get(ctx context.Context, id int) (*structs.Drink, error) {
	q := r.d.Builder().Select("id", "title", "recipe").From(entsql.Table("drinks")).Where(entsql.EQ("id", id))
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
	return scanDrink(rows)
}

func (r *drinkRepository) Update(ctx context.Context, drink *structs.Drink) error {
	recipe, err := json.Marshal(drink.Recipe)
	if err != nil {
		return err
	}

	return r.d.WithTx(ctx, func(ctx context.Context) error {
		if err := r.ensureTitleFree(ctx, drink.Title, drink.ID); err != nil {
			return err
		}
		res, err := r.d.Exec(ctx, r.d.Builder().Update("drinks").
			Set("title", drink.Title).
			Set("recipe", string(recipe)).
			Where(entsql.EQ("id", drink.ID)))
		if err != nil {
			return fmt.Errorf("update drink %d: %w", drink.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return data.ErrNotFound
		}
		return nil
	})
}

func (r *drinkRepository) Delete(ctx context.Context, id int) error {
	res, err := r.d.Exec(ctx, r.d.Builder().Delete("drinks").Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete drink %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotFound
	}
	return nil
}

func (r *drinkRepository) Count(ctx context.Context) (int, error) {
	return r.d.Count(ctx, r.d.Builder().Select().Count().From(entsql.Table("drinks")))
}

func (r *drinkRepository) List(ctx context.Context, offset, limit int) ([]*structs.Drink, error) {
	q := r.d.Builder().Select("id", "title", "recipe").From(entsql.Table("drinks")).
		OrderBy("id").Offset(offset).Limit(limit)
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.Drink
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ensureTitleFree fails with ErrDuplicateTitle when another drink uses title.
func (r *drinkRepository) ensureTitleFree(ctx context.Context, title string, self int) error {
	q := r.d.Builder().Select().Count().From(entsql.Table("drinks")).
		Where(entsql.And(entsql.EQ("title", title), entsql.NEQ("id", self)))
	n, err := r.d.Count(ctx, q)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateTitle
	}
	return nil
}

func scanDrink(rows *entsql.Rows) (*structs.Drink, error) {
	var (
		d      structs.Drink
		recipe string
	)
	if err := rows.Scan(&d.ID, &d.Title, &recipe); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(recipe), &d.Recipe); err != nil {
		return nil, fmt.Errorf("drink %d has a corrupt recipe: %w", d.ID, err)
	}
	return &d, nil
}
