package handler

import (
	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/internal/trivia/service"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/net/resp"

	"github.com/gin-gonic/gin"
)

// ExhaustedMessage is sent once every question of a category was asked
const ExhaustedMessage = "There are no more questions in this category. Try another category!"

// QuizHandler handles quiz rounds.
type QuizHandler struct {
	svc    *service.Service
	logger *logger.Logger
}

// Play returns a random question not asked before in this quiz. Without a
// session_id in the body the session cookie or X-Session-ID header is used.
// @Summary Play a quiz round
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body structs.QuizBody true "Quiz state"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes [post]
func (h *QuizHandler) Play(c *gin.Context) {
	var body structs.QuizBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Fail(c.Writer, resp.Invalid(err))
		return
	}
	if body.SessionID == "" {
		body.SessionID = ctxutil.GetSessionID(c)
	}

	result, err := h.svc.NextQuestion(c.Request.Context(), &body)
	if err != nil {
		failWith(c, h.logger, err)
		return
	}

	out := gin.H{
		"success":            true,
		"question":           result.Question,
		"exhausted":          result.Exhausted,
		"previous_questions": result.PreviousQuestions,
		"quiz_category":      body.QuizCategory,
	}
	if result.SessionID != "" {
		out["session_id"] = result.SessionID
	}
	if result.Exhausted {
		out["message"] = ExhaustedMessage
	}
	resp.Success(c.Writer, out)
}

// End forgets a stored quiz session.
// @Summary End a quiz session
// @Tags trivia
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /quizzes/{session_id} [delete]
func (h *QuizHandler) End(c *gin.Context) {
	id := c.Param("session_id")

	existed, err := h.svc.EndQuiz(c.Request.Context(), id)
	if err != nil {
		failWith(c, h.logger, err)
		return
	}
	if !existed {
		resp.Fail(c.Writer, resp.NotFound("quiz session not found"))
		return
	}

	resp.Success(c.Writer, gin.H{"success": true, "deleted": id})
}
