// Package service contains the coffee shop menu logic.
package service

import (
	"context"
	"errors"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/coffee/data/repository"
	"github.com/milindvishnoi/FSND/internal/coffee/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/paging"
)

// ErrInvalidRecipe is returned when a recipe has no usable ingredients
var ErrInvalidRecipe = errors.New("recipe must list at least one ingredient with a name, color and positive parts")

// DrinkService manages the drink menu
type DrinkService struct {
	repo     repository.DrinkRepositoryInterface
	pageSize int
	maxSize  int
	logger   *logger.Logger
}

// NewDrinkService creates the drink service
func NewDrinkService(d *data.Data, pageSize, maxSize int, l *logger.Logger) *DrinkService {
	return &DrinkService{
		repo:     repository.NewDrinkRepository(d),
		pageSize: pageSize,
		maxSize:  maxSize,
		logger:   l,
	}
}

// List returns one page of drinks. Past the end the page is empty, not an error.
func (s *DrinkService) List(ctx context.Context, params paging.Params) (paging.Page[*structs.Drink], error) {
	params = paging.NormalizeParams(params, s.pageSize, s.maxSize)
	return paging.Query(ctx, params, s.repo.Count, s.repo.List)
}

// Short lists drinks in their public form
func (s *DrinkService) Short(ctx context.Context, params paging.Params) (paging.Page[structs.ShortDrink], error) {
	page, err := s.List(ctx, params)
	if err != nil {
		return paging.Page[structs.ShortDrink]{}, err
	}
	out := paging.Page[structs.ShortDrink]{
		Items:    make([]structs.ShortDrink, len(page.Items)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for i, d := range page.Items {
		out.Items[i] = d.Short()
	}
	return out, nil
}

// Create adds a drink to the menu
func (s *DrinkService) Create(ctx context.Context, body *structs.CreateDrinkBody) (*structs.Drink, error) {
	if err := validateRecipe(body.Recipe); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, &structs.Drink{Title: body.Title, Recipe: body.Recipe})
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateTitle) {
			s.logger.Error(ctx, "failed to create drink", "error", err)
		}
		return nil, err
	}
	s.logger.Info(ctx, "drink created", "id", created.ID, "title", created.Title)
	return created, nil
}

// Update changes the title and/or recipe of a drink
func (s *DrinkService) Update(ctx context.Context, id int, body *structs.UpdateDrinkBody) (*structs.Drink, error) {
	drink, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if body.Title != nil {
		drink.Title = *body.Title
	}
	if body.Recipe != nil {
		if err := validateRecipe(*body.Recipe); err != nil {
			return nil, err
		}
		drink.Recipe = *body.Recipe
	}
	if err := s.repo.Update(ctx, drink); err != nil {
		return nil, err
	}
	return drink, nil
}

// Delete removes a drink, returning data.ErrNotFound if missing
func (s *DrinkService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Seed adds a starter menu when the table is empty
func (s *DrinkService) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, d := range seedDrinks {
		if _, err := s.repo.Create(ctx, &d); err != nil {
			return err
		}
	}
	s.logger.Info(ctx, "coffee menu seeded", "drinks", len(seedDrinks))
	return nil
}

var seedDrinks = []structs.Drink{
	{Title: "Water", Recipe: structs.Recipe{{Name: "water", Color: "blue", Parts: 1}}},
	{Title: "Matcha Shake", Recipe: structs.Recipe{
		{Name: "milk", Color: "grey", Parts: 1},
		{Name: "matcha", Color: "green", Parts: 3},
	}},
	{Title: "Flatwhite", Recipe: structs.Recipe{
		{Name: "milk", Color: "grey", Parts: 3},
		{Name: "coffee", Color: "brown", Parts: 1},
	}},
}

func validateRecipe(r structs.Recipe) error {
	if len(r) == 0 {
		return ErrInvalidRecipe
	}
	for _, in := range r {
		if in.Name == "" || in.Color == "" || in.Parts <= 0 {
			return ErrInvalidRecipe
		}
	}
	return nil
}
