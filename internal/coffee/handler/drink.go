// Package handler provides the coffee shop HTTP handlers.
package handler

import (
	"errors"
	"strconv"

	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/coffee/data/repository"
	"github.com/milindvishnoi/FSND/internal/coffee/service"
	"github.com/milindvishnoi/FSND/internal/coffee/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/middleware"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/paging"
	"github.com/milindvishnoi/FSND/security/jwt"

	"github.com/gin-gonic/gin"
)

// DrinkHandler handles drink requests.
type DrinkHandler struct {
	svc    *service.DrinkService
	tm     *jwt.TokenManager
	logger *logger.Logger
}

// NewDrinkHandler creates a new drink handler.
func NewDrinkHandler(svc *service.DrinkService, tm *jwt.TokenManager, logger *logger.Logger) *DrinkHandler {
	return &DrinkHandler{svc: svc, tm: tm, logger: logger}
}

// RegisterRoutes registers the drink routes. Everything but the public menu
// needs a bearer token carrying the matching permission.
func (h *DrinkHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/drinks", h.List)
	r.GET("/drinks-detail", middleware.RequirePermission(h.tm, structs.PermGetDetail), h.Detail)
	r.POST("/drinks", middleware.RequirePermission(h.tm, structs.PermPostDrinks), h.Create)
	r.PATCH("/drinks/:drink_id", middleware.RequirePermission(h.tm, structs.PermPatchDrinks), h.Update)
	r.DELETE("/drinks/:drink_id", middleware.RequirePermission(h.tm, structs.PermDelete), h.Delete)
}

// List returns the public menu.
// @Summary List drinks
// @Tags coffee
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /drinks [get]
func (h *DrinkHandler) List(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid page"))
		return
	}

	page, err := h.svc.Short(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, gin.H{"success": true, "drinks": page.Items, "total_drinks": page.Total, "page": page.Page})
}

// Detail returns the menu with full recipes.
// @Summary List drinks with recipes
// @Tags coffee
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /drinks-detail [get]
func (h *DrinkHandler) Detail(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid page"))
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err)
		return
	}
	drinks := make([]structs.Drink, len(page.Items))
	for i, d := range page.Items {
		drinks[i] = d.Long()
	}
	resp.Success(c.Writer, gin.H{"success": true, "drinks": drinks, "total_drinks": page.Total, "page": page.Page})
}

// Create adds a drink.
// @Summary Create a drink
// @Tags coffee
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body structs.CreateDrinkBody true "Drink"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /drinks [post]
func (h *DrinkHandler) Create(c *gin.Context) {
	var body structs.CreateDrinkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Fail(c.Writer, resp.Invalid(err))
		return
	}

	drink, err := h.svc.Create(c.Request.Context(), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "drink created", drink.ID)
	resp.Success(c.Writer, gin.H{"success": true, "drinks": []structs.Drink{drink.Long()}})
}

// Update edits a drink.
// @Summary Update a drink
// @Tags coffee
// @Accept json
// @Produce json
// @Security Bearer
// @Param drink_id path int true "Drink ID"
// @Param request body structs.UpdateDrinkBody true "Changes"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /drinks/{drink_id} [patch]
func (h *DrinkHandler) Update(c *gin.Context) {
	id, ok := drinkID(c)
	if !ok {
		return
	}
	var body structs.UpdateDrinkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Fail(c.Writer, resp.Invalid(err))
		return
	}

	drink, err := h.svc.Update(c.Request.Context(), id, &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "drink updated", drink.ID)
	resp.Success(c.Writer, gin.H{"success": true, "drinks": []structs.Drink{drink.Long()}})
}

// Delete removes a drink.
// @Summary Delete a drink
// @Tags coffee
// @Produce json
// @Security Bearer
// @Param drink_id path int true "Drink ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /drinks/{drink_id} [delete]
func (h *DrinkHandler) Delete(c *gin.Context) {
	id, ok := drinkID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "drink deleted", id)
	resp.Success(c.Writer, gin.H{"success": true, "delete": id})
}

// audit logs a menu change with the token subject that made it
func (h *DrinkHandler) audit(c *gin.Context, msg string, id int) {
	ctx := c.Request.Context()
	h.logger.Info(ctx, msg, "drink", id, "by", ctxutil.GetSubject(ctx))
}

func drinkID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("drink_id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid drink id"))
		return 0, false
	}
	return id, true
}

func (h *DrinkHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, data.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(""))
	case errors.Is(err, repository.ErrDuplicateTitle), errors.Is(err, service.ErrInvalidRecipe):
		resp.Fail(c.Writer, resp.Unprocessable(err.Error()))
	default:
		h.logger.Error(c.Request.Context(), "coffee request failed", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(""))
	}
}
