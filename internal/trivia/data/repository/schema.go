package repository

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	categoryID = &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}

	categoriesTable = schema.NewTable("categories").
			AddPrimary(categoryID).
			AddColumn(&schema.Column{Name: "type", Type: field.TypeString, Unique: true})

	questionCategory = &schema.Column{Name: "category", Type: field.TypeInt}

	questionsTable = schema.NewTable("questions").
			AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
			AddColumn(&schema.Column{Name: "question", Type: field.TypeString, Size: 2048}).
			AddColumn(&schema.Column{Name: "answer", Type: field.TypeString, Size: 2048}).
			AddColumn(questionCategory).
			AddColumn(&schema.Column{Name: "difficulty", Type: field.TypeInt})
)

func init() {
	questionsTable.AddForeignKey(&schema.ForeignKey{
		Symbol:     "questions_category_fk",
		Columns:    []*schema.Column{questionCategory},
		RefTable:   categoriesTable,
		RefColumns: []*schema.Column{categoryID},
		OnDelete:   schema.Cascade,
	})
}

// Tables returns the trivia tables in dependency order
func Tables() []*schema.Table {
	return []*schema.Table{categoriesTable, questionsTable}
}
