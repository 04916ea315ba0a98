package repository

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	venueID  = &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	artistID = &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}

	venuesTable = schema.NewTable("venues").
			AddPrimary(venueID).
			AddColumn(&schema.Column{Name: "name", Type: field.TypeString, Size: 255}).
			AddColumn(&schema.Column{Name: "city", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "state", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "address", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "phone", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "genres", Type: field.TypeString, Size: 1024}).
			AddColumn(&schema.Column{Name: "website", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "image_link", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "facebook_link", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "seeking_talent", Type: field.TypeBool}).
			AddColumn(&schema.Column{Name: "seeking_description", Type: field.TypeString, Size: 1024})

	artistsTable = schema.NewTable("artists").
			AddPrimary(artistID).
			AddColumn(&schema.Column{Name: "name", Type: field.TypeString, Size: 255}).
			AddColumn(&schema.Column{Name: "city", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "state", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "phone", Type: field.TypeString, Size: 120}).
			AddColumn(&schema.Column{Name: "genres", Type: field.TypeString, Size: 1024}).
			AddColumn(&schema.Column{Name: "website", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "image_link", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "facebook_link", Type: field.TypeString, Size: 500}).
			AddColumn(&schema.Column{Name: "seeking_venue", Type: field.TypeBool}).
			AddColumn(&schema.Column{Name: "seeking_description", Type: field.TypeString, Size: 1024}).
			AddColumn(&schema.Column{Name: "availability", Type: field.TypeString, Size: 4096})

	showArtist = &schema.Column{Name: "artist_id", Type: field.TypeInt}
	showVenue  = &schema.Column{Name: "venue_id", Type: field.TypeInt}

	showsTable = schema.NewTable("shows").
			AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
			AddColumn(showArtist).
			AddColumn(showVenue).
			AddColumn(&schema.Column{Name: "start_time", Type: field.TypeTime})
)

func init() {
	showsTable.AddForeignKey(&schema.ForeignKey{
		Symbol:     "shows_artist_fk",
		Columns:    []*schema.Column{showArtist},
		RefTable:   artistsTable,
		RefColumns: []*schema.Column{artistID},
		OnDelete:   schema.Cascade,
	})
	showsTable.AddForeignKey(&schema.ForeignKey{
		Symbol:     "shows_venue_fk",
		Columns:    []*schema.Column{showVenue},
		RefTable:   venuesTable,
		RefColumns: []*schema.Column{venueID},
		OnDelete:   schema.Cascade,
	})
}

// Tables returns the booking tables in dependency order
func Tables() []*schema.Table {
	return []*schema.Table{venuesTable, artistsTable, showsTable}
}
