package repository

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var drinksTable = schema.NewTable("drinks").
	AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
	AddColumn(&schema.Column{Name: "title", Type: field.TypeString, Size: 80, Unique: true}).
	AddColumn(&schema.Column{Name: "recipe", Type: field.TypeString, Size: 4096})

// Tables returns the coffee shop tables
func Tables() []*schema.Table {
	return []*schema.Table{drinksTable}
}
