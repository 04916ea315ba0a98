package structs

// Category groups questions, e.g. "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a trivia question with its answer
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Identifier lets questions be picked for a quiz
func (q Question) Identifier() int {
	return q.ID
}

// CreateQuestionBody is the payload of POST /questions
type CreateQuestionBody struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   int    `json:"category" binding:"required,gt=0"`
	Difficulty int    `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchBody is the payload of POST /questions/search
type SearchBody struct {
	SearchTerm string `json:"searchTerm"`
}

// ListQuestionParams filters a question listing
type ListQuestionParams struct {
	CategoryID int
	SearchTerm string
	Page       int
	PageSize   int
}

// QuizCategory selects the quiz scope. ID 0 means every category.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizBody is the payload of POST /quizzes
type QuizBody struct {
	PreviousQuestions []int        `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
	SessionID         string       `json:"session_id"`
}

// QuizResult is the outcome of one quiz round. Question is nil when the
// category has been exhausted.
type QuizResult struct {
	Question          *Question
	Exhausted         bool
	PreviousQuestions []int
	SessionID         string
}
