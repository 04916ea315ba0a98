// Package handler provides the trivia HTTP handlers.
package handler

import (
	"github.com/milindvishnoi/FSND/internal/trivia/service"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/gin-gonic/gin"
)

// Handler aggregates the trivia handlers.
type Handler struct {
	Question *QuestionHandler
	Quiz     *QuizHandler
	logger   *logger.Logger
}

// New creates a new handler with all sub-handlers initialized.
func New(svc *service.Service, logger *logger.Logger) *Handler {
	return &Handler{
		Question: &QuestionHandler{svc: svc, logger: logger},
		Quiz:     &QuizHandler{svc: svc, logger: logger},
		logger:   logger,
	}
}

// RegisterRoutes registers the trivia routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/categories", h.Question.Categories)
	r.GET("/categories/:category_id/questions", h.Question.ByCategory)

	questions := r.Group("/questions")
	{
		questions.GET("", h.Question.List)
		questions.POST("", h.Question.Create)
		questions.POST("/search", h.Question.Search)
		questions.DELETE("/:question_id", h.Question.Delete)
	}

	quizzes := r.Group("/quizzes")
	{
		quizzes.POST("", h.Quiz.Play)
		quizzes.DELETE("/:session_id", h.Quiz.End)
	}
}
