package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/milindvishnoi/FSND/internal/fyyur/service"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/paging"

	"github.com/gin-gonic/gin"
)

// Artists renders one page of artists.
// @Summary List artists
// @Tags fyyur
// @Produce html
// @Param page query int false "Page number"
// @Router /artists [get]
func (h *Handler) Artists(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.notFound(c)
		return
	}
	page, err := h.svc.Artists(c.Request.Context(), params)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "artists", gin.H{"title": "Artists", "artists": page.Items, "page": paging.ToResult(page)})
}

// SearchArtists finds artists by a case-insensitive name fragment.
// @Summary Search artists
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /artists/search [post]
func (h *Handler) SearchArtists(c *gin.Context) {
	var form structs.SearchForm
	_ = c.ShouldBind(&form)

	results, err := h.svc.SearchArtists(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "search", gin.H{"title": "Artists", "kind": "artists", "results": results, "search_term": form.SearchTerm})
}

// ShowArtist renders an artist with its shows.
// @Summary Artist detail
// @Tags fyyur
// @Produce html
// @Param artist_id path int true "Artist ID"
// @Router /artists/{artist_id} [get]
func (h *Handler) ShowArtist(c *gin.Context) {
	id, ok := h.id(c, "artist_id")
	if !ok {
		return
	}
	artist, err := h.svc.ArtistDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "artist", gin.H{"title": artist.Name, "artist": artist})
}

// NewArtist renders the empty artist form.
func (h *Handler) NewArtist(c *gin.Context) {
	h.render(c, http.StatusOK, "artist_form", gin.H{"title": "New Artist", "artist": &structs.Artist{}, "action": "/artists/create"})
}

// CreateArtist lists an artist and lands on the home page with a flash.
// @Summary Create an artist
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /artists/create [post]
func (h *Handler) CreateArtist(c *gin.Context) {
	var form structs.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "artist_form", gin.H{
			"title": "New Artist", "artist": formArtist(&form, 0), "action": "/artists/create", "errors": resp.FieldErrors(err),
		})
		return
	}

	if _, err := h.svc.CreateArtist(c.Request.Context(), &form); err != nil {
		if errors.Is(err, service.ErrInvalidTime) {
			h.home(c, http.StatusUnprocessableEntity, "Artist "+form.Name+" could not be listed: "+err.Error())
			return
		}
		h.home(c, http.StatusInternalServerError, "An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}
	h.home(c, http.StatusOK, "Artist "+form.Name+" was successfully listed!")
}

// EditArtist renders the artist form filled with current values.
func (h *Handler) EditArtist(c *gin.Context) {
	id, ok := h.id(c, "artist_id")
	if !ok {
		return
	}
	artist, err := h.svc.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "artist_form", gin.H{"title": "Edit Artist", "artist": artist, "action": c.Request.URL.Path})
}

// UpdateArtist saves the artist form and redirects to the artist page.
// @Summary Edit an artist
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Param artist_id path int true "Artist ID"
// @Router /artists/{artist_id}/edit [post]
func (h *Handler) UpdateArtist(c *gin.Context) {
	id, ok := h.id(c, "artist_id")
	if !ok {
		return
	}
	var form structs.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "artist_form", gin.H{
			"title": "Edit Artist", "artist": formArtist(&form, id), "action": c.Request.URL.Path, "errors": resp.FieldErrors(err),
		})
		return
	}

	if _, err := h.svc.UpdateArtist(c.Request.Context(), id, &form); err != nil {
		if errors.Is(err, service.ErrInvalidTime) {
			h.render(c, http.StatusUnprocessableEntity, "artist_form", gin.H{
				"title": "Edit Artist", "artist": formArtist(&form, id), "action": c.Request.URL.Path,
				"errors": map[string]string{"Availability": err.Error()},
			})
			return
		}
		h.fail(c, err)
		return
	}
	flash(c, "Artist was edited!")
	c.Redirect(http.StatusSeeOther, "/artists/"+strconv.Itoa(id))
}

// formArtist echoes submitted values back into the form. Availability is
// dropped since it may not parse.
func formArtist(f *structs.ArtistForm, id int) *structs.Artist {
	return &structs.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             structs.SplitGenres(f.Genres),
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}
