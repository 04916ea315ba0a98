package repository

import (
	"context"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/internal/trivia/structs"

	entsql "entgo.io/ent/dialect/sql"
)

var questionColumns = []string{"id", "question", "answer", "category", "difficulty"}

// QuestionFilter narrows question queries. Zero values do not filter.
type QuestionFilter struct {
	CategoryID int
	SearchTerm string
}

// QuestionRepositoryInterface represents the question repository interface.
type QuestionRepositoryInterface interface {
	Create(ctx context.Context, q *structs.Question) (*structs.Question, error)
	Get(ctx context.Context, id int) (*structs.Question, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, filter QuestionFilter) (int, error)
	List(ctx context.Context, filter QuestionFilter, offset, limit int) ([]*structs.Question, error)
	ListAll(ctx context.Context, filter QuestionFilter) ([]structs.Question, error)
}

// questionRepository implements the QuestionRepositoryInterface.
type questionRepository struct {
	d *data.Data
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(d *data.Data) QuestionRepositoryInterface {
	return &questionRepository{d: d}
}

func (r *questionRepository) Create(ctx context.Context, q *structs.Question) (*structs.Question, error) {
	insert := r.d.Builder().Insert("questions").
		Set("question", q.Question).
		Set("answer", q.Answer).
		Set("category", q.Category).
		Set("difficulty", q.Difficulty)

	id, err := r.d.InsertID(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	created := *q
	created.ID = id
	return &created, nil
}

func (r *questionRepository) Get(ctx context.Context, id int) (*structs.Question, error) {
	rows, err := r.d.Query(ctx, r.selector(QuestionFilter{}).Where(entsql.EQ("id", id)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, data.ErrNotFound
	}
	return scanQuestion(rows)
}

func (r *questionRepository) Delete(ctx context.Context, id int) error {
	res, err := r.d.Exec(ctx, r.d.Builder().Delete("questions").Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return data.ErrNotFound
	}
	return nil
}

func (r *questionRepository) Count(ctx context.Context, filter QuestionFilter) (int, error) {
	q := r.d.Builder().Select().Count().From(entsql.Table("questions"))
	applyFilter(q, filter)
	return r.d.Count(ctx, q)
}

func (r *questionRepository) List(ctx context.Context, filter QuestionFilter, offset, limit int) ([]*structs.Question, error) {
	q := r.selector(filter).OrderBy("id").Offset(offset).Limit(limit)
	rows, err := r.d.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*structs.Question
	for rows.Next() {
		item, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ListAll returns every matching question by value, used as quiz candidates.
func (r *questionRepository) ListAll(ctx context.Context, filter QuestionFilter) ([]structs.Question, error) {
	rows, err := r.d.Query(ctx, r.selector(filter).OrderBy("id"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []structs.Question
	for rows.Next() {
		item, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

func (r *questionRepository) selector(filter QuestionFilter) *entsql.Selector {
	q := r.d.Builder().Select(questionColumns...).From(entsql.Table("questions"))
	applyFilter(q, filter)
	return q
}

func applyFilter(q *entsql.Selector, filter QuestionFilter) {
	if filter.CategoryID > 0 {
		q.Where(entsql.EQ("category", filter.CategoryID))
	}
	if filter.SearchTerm != "" {
		q.Where(entsql.ContainsFold("question", filter.SearchTerm))
	}
}

func scanQuestion(rows *entsql.Rows) (*structs.Question, error) {
	q := &structs.Question{}
	if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
		return nil, err
	}
	return q, nil
}
