package structs

import "strings"

// SplitGenres accepts repeated fields and comma separated values alike
func SplitGenres(in []string) []string {
	out := []string{}
	for _, raw := range in {
		for _, g := range strings.Split(raw, ",") {
			if g = strings.TrimSpace(g); g != "" {
				out = append(out, g)
			}
		}
	}
	return out
}

// VenueForm is the venue create and edit form
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	Website            string   `form:"website" binding:"omitempty,url"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

// Venue converts the form into a venue
func (f *VenueForm) Venue() *Venue {
	return &Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             SplitGenres(f.Genres),
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// ArtistForm is the artist create and edit form. Availability holds free
// form date strings.
type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	Website            string   `form:"website" binding:"omitempty,url"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
	Availability       []string `form:"availability"`
}

// ShowForm is the show booking form
type ShowForm struct {
	ArtistID  int    `form:"artist_id" binding:"required,gt=0"`
	VenueID   int    `form:"venue_id" binding:"required,gt=0"`
	StartTime string `form:"start_time" binding:"required"`
}

// SearchForm is the name search form
type SearchForm struct {
	SearchTerm string `form:"search_term"`
}
