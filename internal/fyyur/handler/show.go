package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/milindvishnoi/FSND/internal/fyyur/service"
	"github.com/milindvishnoi/FSND/internal/fyyur/structs"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/paging"

	"github.com/gin-gonic/gin"
)

// Shows renders one page of shows.
// @Summary List shows
// @Tags fyyur
// @Produce html
// @Param page query int false "Page number"
// @Router /shows [get]
func (h *Handler) Shows(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.notFound(c)
		return
	}
	page, err := h.svc.Shows(c.Request.Context(), params)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "shows", gin.H{"title": "Shows", "shows": page.Items, "page": paging.ToResult(page)})
}

// NewShow renders the booking form.
func (h *Handler) NewShow(c *gin.Context) {
	h.render(c, http.StatusOK, "show_form", gin.H{
		"title":        "New Show",
		"default_time": time.Now().UTC().Format("2006-01-02 15:04"),
	})
}

// CreateShow books a show and lands on the home page with a flash.
// @Summary Book a show
// @Tags fyyur
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /shows/create [post]
func (h *Handler) CreateShow(c *gin.Context) {
	var form structs.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "show_form", gin.H{"title": "New Show", "errors": resp.FieldErrors(err)})
		return
	}

	_, err := h.svc.CreateShow(c.Request.Context(), &form)
	switch {
	case err == nil:
		h.home(c, http.StatusOK, "Show was successfully listed!")
	case errors.Is(err, service.ErrArtistUnavailable):
		h.home(c, http.StatusUnprocessableEntity, "Artist not available at that time")
	case errors.Is(err, service.ErrUnknownArtist),
		errors.Is(err, service.ErrUnknownVenue),
		errors.Is(err, service.ErrInvalidTime):
		h.home(c, http.StatusUnprocessableEntity, "Invalid reservation: "+err.Error())
	default:
		h.logger.Error(c.Request.Context(), "failed to book show", "error", err)
		h.home(c, http.StatusInternalServerError, "An error occurred. Show could not be listed.")
	}
}
