// Package handler provides the fyyur HTML handlers.
package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/milindvishnoi/FSND/internal/fyyur/service"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const flashCookie = "fyyur_flash"

// Handler serves the fyyur pages.
type Handler struct {
	svc    *service.Service
	tmpl   *template.Template
	logger *logger.Logger
}

// New parses the embedded templates and creates the handler.
func New(svc *service.Service, logger *logger.Logger) (*Handler, error) {
	funcs := sprig.FuncMap()
	funcs["datetime"] = formatDateTime

	tmpl, err := template.New("fyyur").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, tmpl: tmpl, logger: logger}, nil
}

// RegisterRoutes registers the fyyur routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", h.Venues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.NewVenue)
		venues.POST("/create", h.CreateVenue)
		venues.GET("/:venue_id", h.ShowVenue)
		venues.DELETE("/:venue_id", h.DeleteVenue)
		venues.GET("/:venue_id/edit", h.EditVenue)
		venues.POST("/:venue_id/edit", h.UpdateVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", h.Artists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.NewArtist)
		artists.POST("/create", h.CreateArtist)
		artists.GET("/:artist_id", h.ShowArtist)
		artists.GET("/:artist_id/edit", h.EditArtist)
		artists.POST("/:artist_id/edit", h.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", h.Shows)
		shows.GET("/create", h.NewShow)
		shows.POST("/create", h.CreateShow)
	}
}

// Home renders the landing page with any pending flash messages.
func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home", nil)
}

// render executes a page template. Pending flash messages are consumed and
// merged with any passed in data["flashes"].
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	flashes := takeFlashes(c)
	if extra, ok := data["flashes"].([]string); ok {
		flashes = append(flashes, extra...)
	}
	data["flashes"] = flashes
	c.Render(status, render.HTML{Template: h.tmpl, Name: name, Data: data})
}

// home renders the landing page showing msg, the way form submissions finish.
func (h *Handler) home(c *gin.Context, status int, msg string) {
	h.render(c, status, "home", gin.H{"flashes": []string{msg}})
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error", gin.H{"status": http.StatusNotFound, "message": "Page Not Found", "title": "Not Found"})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "fyyur request failed", "path", c.Request.URL.Path, "error", err)
	h.render(c, http.StatusInternalServerError, "error", gin.H{"status": http.StatusInternalServerError, "message": "Internal Server Error", "title": "Error"})
}

// flash stores msg for the next rendered page, used before redirects.
func flash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

func takeFlashes(c *gin.Context) []string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	return []string{msg}
}

// formatDateTime renders show times: "full", "medium" or "iso".
func formatDateTime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format("Monday January 2, 2006 at 3:04PM")
	case "iso":
		return t.Format("2006-01-02 15:04")
	default:
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}
