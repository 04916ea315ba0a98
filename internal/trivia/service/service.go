// Package service contains the trivia question and quiz logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/trivia/data/repository"
	"github.com/milindvishnoi/FSND/internal/trivia/data/session"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/paging"
	"github.com/milindvishnoi/FSND/picker"
)

var (
	// ErrEmptyPage is returned when a listing window holds no questions
	ErrEmptyPage = errors.New("no questions on the requested page")
	// ErrUnknownCategory is returned when a category id does not exist
	ErrUnknownCategory = errors.New("category does not exist")
)

// Service serves trivia questions, categories and quiz rounds
type Service struct {
	d          *data.Data
	categories repository.CategoryRepositoryInterface
	questions  repository.QuestionRepositoryInterface
	sessions   session.Store
	rnd        picker.Rand
	pageSize   int
	maxSize    int
	logger     *logger.Logger
}

// Option configures a Service
type Option func(*Service)

// WithRand sets the randomness source for quiz picks
func WithRand(rnd picker.Rand) Option {
	return func(s *Service) { s.rnd = rnd }
}

// WithPageSize sets the default and maximum page sizes
func WithPageSize(size, max int) Option {
	return func(s *Service) {
		s.pageSize = size
		s.maxSize = max
	}
}

// New creates the trivia service
func New(d *data.Data, sessions session.Store, l *logger.Logger, opts ...Option) *Service {
	s := &Service{
		d:          d,
		categories: repository.NewCategoryRepository(d),
		questions:  repository.NewQuestionRepository(d),
		sessions:   sessions,
		pageSize:   paging.DefaultPageSize,
		logger:     l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories lists every category
func (s *Service) Categories(ctx context.Context) ([]*structs.Category, error) {
	return s.categories.List(ctx)
}

// CategoryMap returns categories keyed by id, the shape the frontend expects
func (s *Service) CategoryMap(ctx context.Context) (map[int]string, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(list))
	for _, c := range list {
		out[c.ID] = c.Type
	}
	return out, nil
}

// Category returns one category or ErrUnknownCategory
func (s *Service) Category(ctx context.Context, id int) (*structs.Category, error) {
	c, err := s.categories.Get(ctx, id)
	if errors.Is(err, data.ErrNotFound) {
		return nil, ErrUnknownCategory
	}
	return c, err
}

// ListQuestions returns one page of questions. An empty page is ErrEmptyPage
// unless a search term is set, where no matches is a valid answer.
func (s *Service) ListQuestions(ctx context.Context, params structs.ListQuestionParams) (paging.Page[*structs.Question], error) {
	filter := repository.QuestionFilter{CategoryID: params.CategoryID, SearchTerm: params.SearchTerm}
	window := paging.NormalizeParams(paging.Params{Page: params.Page, PageSize: params.PageSize}, s.pageSize, s.maxSize)

	page, err := paging.Query(ctx, window,
		func(ctx context.Context) (int, error) {
			return s.questions.Count(ctx, filter)
		},
		func(ctx context.Context, offset, limit int) ([]*structs.Question, error) {
			return s.questions.List(ctx, filter, offset, limit)
		},
	)
	if err != nil {
		s.logger.Error(ctx, "failed to list questions", "error", err)
		return page, err
	}
	if page.Empty() && params.SearchTerm == "" {
		return page, ErrEmptyPage
	}
	return page, nil
}

// CreateQuestion stores a new question after checking its category
func (s *Service) CreateQuestion(ctx context.Context, body *structs.CreateQuestionBody) (*structs.Question, int, error) {
	if _, err := s.Category(ctx, body.Category); err != nil {
		return nil, 0, err
	}

	created, err := s.questions.Create(ctx, &structs.Question{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   body.Category,
		Difficulty: body.Difficulty,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create question", "error", err)
		return nil, 0, err
	}

	total, err := s.questions.Count(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, 0, err
	}
	return created, total, nil
}

// DeleteQuestion removes a question, returning data.ErrNotFound if missing
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	return s.questions.Delete(ctx, id)
}

// NextQuestion plays one quiz round. The exclusion set is the union of the
// client's previous questions and, with a session id, the stored session.
func (s *Service) NextQuestion(ctx context.Context, body *structs.QuizBody) (*structs.QuizResult, error) {
	categoryID := body.QuizCategory.ID
	if categoryID != 0 {
		if _, err := s.Category(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	candidates, err := s.questions.ListAll(ctx, repository.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	excluded := picker.NewIDSet(body.PreviousQuestions...)
	if body.SessionID != "" {
		stored, err := s.sessions.Load(ctx, body.SessionID)
		if err != nil {
			return nil, err
		}
		for id := range stored {
			excluded.Add(id)
		}
	}

	quiz := picker.NewSession(body.SessionID, excluded.IDs()...)
	result := &structs.QuizResult{SessionID: body.SessionID}

	q, ok := picker.Advance(quiz, candidates, s.rnd)
	if ok && body.SessionID != "" {
		if err := s.sessions.Add(ctx, body.SessionID, q.ID); err != nil {
			return nil, fmt.Errorf("record quiz pick: %w", err)
		}
	}

	if ok {
		result.Question = &q
	}
	result.Exhausted = quiz.Complete()
	result.PreviousQuestions = quiz.Excluded.IDs()
	return result, nil
}

// EndQuiz forgets a stored quiz session and reports whether it existed
func (s *Service) EndQuiz(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.Delete(ctx, sessionID)
}
