package structs

import (
	"bytes"
	"encoding/json"
)

// Permissions granted by the coffee shop token issuer
const (
	PermGetDetail   = "get:drinks-detail"
	PermPostDrinks  = "post:drinks"
	PermPatchDrinks = "patch:drinks"
	PermDelete      = "delete:drinks"
)

// Ingredient is one layer of a drink
type Ingredient struct {
	Color string `json:"color" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Parts int    `json:"parts" binding:"required,gt=0"`
}

// ShortIngredient is an ingredient without its name
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Recipe is an ordered list of ingredients. A single JSON object decodes as
// a one-ingredient recipe.
type Recipe []Ingredient

// UnmarshalJSON accepts either an array or a single ingredient object
func (r *Recipe) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var one Ingredient
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*r = Recipe{one}
		return nil
	}
	var many []Ingredient
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*r = many
	return nil
}

// Drink is a menu entry
type Drink struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

// ShortDrink is the public form of a drink
type ShortDrink struct {
	ID     int               `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

// Short hides ingredient names
func (d *Drink) Short() ShortDrink {
	recipe := make([]ShortIngredient, len(d.Recipe))
	for i, in := range d.Recipe {
		recipe[i] = ShortIngredient{Color: in.Color, Parts: in.Parts}
	}
	return ShortDrink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// Long returns the full drink
func (d *Drink) Long() Drink {
	recipe := make(Recipe, len(d.Recipe))
	copy(recipe, d.Recipe)
	return Drink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// CreateDrinkBody is the payload of POST /drinks
type CreateDrinkBody struct {
	Title  string `json:"title" binding:"required,max=80"`
	Recipe Recipe `json:"recipe" binding:"required,min=1,dive"`
}

// UpdateDrinkBody is the payload of PATCH /drinks/:id; nil fields are kept
type UpdateDrinkBody struct {
	Title  *string `json:"title" binding:"omitempty,min=1,max=80"`
	Recipe *Recipe `json:"recipe" binding:"omitempty,min=1,dive"`
}
