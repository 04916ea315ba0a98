package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/net/resp"

	"github.com/gin-gonic/gin"
)

// Venues lists venues grouped by city and state.
// @Summary List venues by area
// @Tags fyyur
// @Produce html
// @Router /venues [get]
func (h *Handler) Venues(c *gin.Context) {
	areas, err := h.svc.Venues(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "venues", gin.H{"title": "Venues", "areas": areas})
}

// SearchVenues finds venues by a case-insensitive name fragment.
// @Summary Search venues
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /venues/search [post]
func (h *Handler) SearchVenues(c *gin.Context) {
	var form structs.SearchForm
	_ = c.ShouldBind(&form)

	results, err := h.svc.SearchVenues(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "search", gin.H{"title": "Venues", "kind": "venues", "results": results, "search_term": form.SearchTerm})
}

// ShowVenue renders a venue with its shows.
// @Summary Venue detail
// @Tags fyyur
// @Produce html
// @Param venue_id path int true "Venue ID"
// @Router /venues/{venue_id} [get]
func (h *Handler) ShowVenue(c *gin.Context) {
	id, ok := h.id(c, "venue_id")
	if !ok {
		return
	}
	venue, err := h.svc.VenueDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "venue", gin.H{"title": venue.Name, "venue": venue})
}

// NewVenue renders the empty venue form.
func (h *Handler) NewVenue(c *gin.Context) {
	h.render(c, http.StatusOK, "venue_form", gin.H{"title": "New Venue", "venue": &structs.Venue{}, "action": "/venues/create"})
}

// CreateVenue lists a venue and lands on the home page with a flash.
// @Summary Create a venue
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /venues/create [post]
func (h *Handler) CreateVenue(c *gin.Context) {
	var form structs.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "venue_form", gin.H{
			"title": "New Venue", "venue": form.Venue(), "action": "/venues/create", "errors": resp.FieldErrors(err),
		})
		return
	}

	if _, err := h.svc.CreateVenue(c.Request.Context(), &form); err != nil {
		h.home(c, http.StatusInternalServerError, "An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}
	h.home(c, http.StatusOK, "Venue "+form.Name+" was successfully listed!")
}

// EditVenue renders the venue form filled with current values.
func (h *Handler) EditVenue(c *gin.Context) {
	id, ok := h.id(c, "venue_id")
	if !ok {
		return
	}
	venue, err := h.svc.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "venue_form", gin.H{"title": "Edit Venue", "venue": venue, "action": c.Request.URL.Path})
}

// UpdateVenue saves the venue form and redirects to the venue page.
// @Summary Edit a venue
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Param venue_id path int true "Venue ID"
// @Router /venues/{venue_id}/edit [post]
func (h *Handler) UpdateVenue(c *gin.Context) {
	id, ok := h.id(c, "venue_id")
	if !ok {
		return
	}
	var form structs.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		v := form.Venue()
		v.ID = id
		h.render(c, http.StatusUnprocessableEntity, "venue_form", gin.H{
			"title": "Edit Venue", "venue": v, "action": c.Request.URL.Path, "errors": resp.FieldErrors(err),
		})
		return
	}

	if _, err := h.svc.UpdateVenue(c.Request.Context(), id, &form); err != nil {
		h.fail(c, err)
		return
	}
	flash(c, "Venue was edited!")
	c.Redirect(http.StatusSeeOther, "/venues/"+strconv.Itoa(id))
}

// DeleteVenue removes a venue. It is called from script, so it answers JSON.
// @Summary Delete a venue
// @Tags fyyur
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /venues/{venue_id} [delete]
func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("venue_id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid venue id"))
		return
	}
	if err := h.svc.DeleteVenue(c.Request.Context(), id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			resp.Fail(c.Writer, resp.NotFound(""))
			return
		}
		h.logger.Error(c.Request.Context(), "failed to delete venue", "id", id, "error", err)
		resp.Fail(c.Writer, resp.InternalServer("An error occurred. Venue could not be deleted."))
		return
	}
	flash(c, "Venue was successfully deleted!")
	resp.Success(c.Writer, gin.H{"success": true, "deleted": id})
}

func (h *Handler) id(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, data.ErrNotFound) {
		h.notFound(c)
		return
	}
	h.serverError(c, err)
}
