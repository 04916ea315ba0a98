package service

import (
	"context"
	"io"
	"testing"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/data/datatest"
	"github.com/milindvishnoi/FSND/internal/trivia/data/repository"
	"github.com/milindvishnoi/FSND/internal/trivia/data/session"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scienceID = 1

func newService(t *testing.T) *Service {
	t.Helper()
	d := datatest.New(t, repository.Tables()...)
	s := New(d, session.NewMemoryStore(0), logger.NewWriter(io.Discard, logrus.ErrorLevel))
	require.NoError(t, s.Seed(context.Background()))
	return s
}

func TestSeed_Idempotent(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Seed(context.Background()))

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(seedCategories))
}

func TestListQuestions_Pages(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	first, err := s.ListQuestions(ctx, structs.ListQuestionParams{Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, len(seedQuestions), first.Total)
	assert.True(t, first.HasNext())

	second, err := s.ListQuestions(ctx, structs.ListQuestionParams{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Items, len(seedQuestions)-10)
	assert.False(t, second.HasNext())
	assert.Greater(t, second.Items[0].ID, first.Items[9].ID)

	_, err = s.ListQuestions(ctx, structs.ListQuestionParams{Page: 1000})
	assert.ErrorIs(t, err, ErrEmptyPage)
}

func TestListQuestions_Search(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	page, err := s.ListQuestions(ctx, structs.ListQuestionParams{SearchTerm: "WHO"})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	for _, q := range page.Items {
		assert.Contains(t, q.Question, "Who")
	}

	page, err = s.ListQuestions(ctx, structs.ListQuestionParams{SearchTerm: "no such text"})
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, 0, page.Total)
}

func TestListQuestions_Category(t *testing.T) {
	s := newService(t)

	page, err := s.ListQuestions(context.Background(), structs.ListQuestionParams{CategoryID: scienceID})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	for _, q := range page.Items {
		assert.Equal(t, scienceID, q.Category)
	}
}

func TestCreateAndDeleteQuestion(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	q, total, err := s.CreateQuestion(ctx, &structs.CreateQuestionBody{
		Question: "What is H2O?", Answer: "Water", Category: scienceID, Difficulty: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)
	assert.Equal(t, len(seedQuestions)+1, total)

	require.NoError(t, s.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, s.DeleteQuestion(ctx, q.ID), data.ErrNotFound)
}

func TestCreateQuestion_UnknownCategory(t *testing.T) {
	s := newService(t)
	_, _, err := s.CreateQuestion(context.Background(), &structs.CreateQuestionBody{
		Question: "q", Answer: "a", Category: 99, Difficulty: 1,
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNextQuestion_SessionRunsDry(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	body := &structs.QuizBody{QuizCategory: structs.QuizCategory{ID: scienceID}, SessionID: "s1"}

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		res, err := s.NextQuestion(ctx, body)
		require.NoError(t, err)
		require.NotNil(t, res.Question)
		assert.False(t, res.Exhausted)
		assert.False(t, seen[res.Question.ID], "question %d repeated", res.Question.ID)
		seen[res.Question.ID] = true
		assert.Len(t, res.PreviousQuestions, i+1)
	}

	res, err := s.NextQuestion(ctx, body)
	require.NoError(t, err)
	assert.Nil(t, res.Question)
	assert.True(t, res.Exhausted)

	existed, err := s.EndQuiz(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, existed)

	res, err = s.NextQuestion(ctx, body)
	require.NoError(t, err)
	assert.NotNil(t, res.Question)
}

func TestNextQuestion_PreviousQuestionsOnly(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	all, err := s.ListQuestions(ctx, structs.ListQuestionParams{PageSize: 100})
	require.NoError(t, err)

	prev := make([]int, 0, len(all.Items)-1)
	for _, q := range all.Items[1:] {
		prev = append(prev, q.ID)
	}

	res, err := s.NextQuestion(ctx, &structs.QuizBody{PreviousQuestions: prev})
	require.NoError(t, err)
	require.NotNil(t, res.Question)
	assert.Equal(t, all.Items[0].ID, res.Question.ID)
}

func TestNextQuestion_UnknownCategory(t *testing.T) {
	s := newService(t)
	_, err := s.NextQuestion(context.Background(), &structs.QuizBody{QuizCategory: structs.QuizCategory{ID: 42}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
