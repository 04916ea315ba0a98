package handler

import (
	"errors"
	"strconv"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/trivia/service"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/paging"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles question and category requests.
type QuestionHandler struct {
	svc    *service.Service
	logger *logger.Logger
}

// Categories lists all categories.
// @Summary List categories
// @Tags trivia
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /categories [get]
func (h *QuestionHandler) Categories(c *gin.Context) {
	categories, err := h.svc.CategoryMap(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list categories", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(""))
		return
	}
	if len(categories) == 0 {
		resp.Fail(c.Writer, resp.NotFound(""))
		return
	}

	resp.Success(c.Writer, gin.H{"success": true, "categories": categories})
}

// List returns one page of questions.
// @Summary List questions
// @Tags trivia
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	params, ok := bindPage(c)
	if !ok {
		return
	}
	h.listPage(c, structs.ListQuestionParams{Page: params.Page, PageSize: params.PageSize}, nil)
}

// ByCategory returns one page of the questions in a category.
// @Summary List questions in a category
// @Tags trivia
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{category_id}/questions [get]
func (h *QuestionHandler) ByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid category id"))
		return
	}
	params, ok := bindPage(c)
	if !ok {
		return
	}

	category, err := h.svc.Category(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.listPage(c, structs.ListQuestionParams{CategoryID: id, Page: params.Page, PageSize: params.PageSize}, category.Type)
}

// Search returns one page of the questions containing a search term.
// @Summary Search questions
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body structs.SearchBody true "Search term"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /questions/search [post]
func (h *QuestionHandler) Search(c *gin.Context) {
	var body structs.SearchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Fail(c.Writer, resp.Invalid(err))
		return
	}
	params, ok := bindPage(c)
	if !ok {
		return
	}
	h.listPage(c, structs.ListQuestionParams{SearchTerm: body.SearchTerm, Page: params.Page, PageSize: params.PageSize}, nil)
}

// Create adds a question.
// @Summary Create a question
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body structs.CreateQuestionBody true "Question"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var body structs.CreateQuestionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid question", "error", err)
		resp.Fail(c.Writer, resp.Invalid(err))
		return
	}

	q, total, err := h.svc.CreateQuestion(c.Request.Context(), &body)
	if errors.Is(err, service.ErrUnknownCategory) {
		resp.Fail(c.Writer, resp.Unprocessable(err.Error()))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{
		"success":         true,
		"created":         q.ID,
		"question":        q,
		"total_questions": total,
	})
}

// Delete removes a question.
// @Summary Delete a question
// @Tags trivia
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /questions/{question_id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("question_id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid question id"))
		return
	}

	if err := h.svc.DeleteQuestion(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{"success": true, "deleted": id})
}

func (h *QuestionHandler) listPage(c *gin.Context, params structs.ListQuestionParams, current any) {
	ctx := c.Request.Context()

	page, err := h.svc.ListQuestions(ctx, params)
	if err != nil {
		h.fail(c, err)
		return
	}
	categories, err := h.svc.CategoryMap(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp.Success(c.Writer, gin.H{
		"success":          true,
		"questions":        page.Items,
		"total_questions":  page.Total,
		"page":             page.Page,
		"categories":       categories,
		"current_category": current,
	})
}

func (h *QuestionHandler) fail(c *gin.Context, err error) {
	failWith(c, h.logger, err)
}

// bindPage reads page and page_size from the query, writing a 400 on failure.
func bindPage(c *gin.Context) (paging.Params, bool) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid page"))
		return params, false
	}
	if params.PageSize < 0 {
		resp.Fail(c.Writer, resp.BadRequest(paging.ErrInvalidPageSize.Error()))
		return params, false
	}
	return params, true
}

// failWith maps service errors to responses.
func failWith(c *gin.Context, l *logger.Logger, err error) {
	switch {
	case errors.Is(err, data.ErrNotFound),
		errors.Is(err, service.ErrEmptyPage),
		errors.Is(err, service.ErrUnknownCategory):
		resp.Fail(c.Writer, resp.NotFound(""))
	case errors.Is(err, paging.ErrInvalidPageSize):
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
	default:
		l.Error(c.Request.Context(), "trivia request failed", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(""))
	}
}
