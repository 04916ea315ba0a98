package service

import (
	"context"

	"github.com/milindvishnoi/FSND/internal/trivia/structs"
)

var seedCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// seedQuestions are keyed by the index into seedCategories
var seedQuestions = []struct {
	category int
	question structs.Question
}{
	{0, structs.Question{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Difficulty: 4}},
	{0, structs.Question{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Difficulty: 3}},
	{0, structs.Question{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Difficulty: 4}},
	{1, structs.Question{Question: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", Difficulty: 1}},
	{1, structs.Question{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Difficulty: 3}},
	{1, structs.Question{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Difficulty: 4}},
	{2, structs.Question{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Difficulty: 2}},
	{2, structs.Question{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Difficulty: 3}},
	{2, structs.Question{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Difficulty: 2}},
	{3, structs.Question{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Difficulty: 2}},
	{3, structs.Question{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Difficulty: 4}},
	{3, structs.Question{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Difficulty: 2}},
	{4, structs.Question{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1}},
	{4, structs.Question{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Difficulty: 4}},
	{4, structs.Question{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Difficulty: 4}},
	{5, structs.Question{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Difficulty: 3}},
	{5, structs.Question{Question: "Who is the top scorer in men's World Cup history?", Answer: "Miroslav Klose", Difficulty: 3}},
}

// Seed inserts sample categories and questions into an empty database
func (s *Service) Seed(ctx context.Context) error {
	n, err := s.categories.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info(ctx, "trivia already seeded", "categories", n)
		return nil
	}

	return s.d.WithTx(ctx, func(ctx context.Context) error {
		ids := make([]int, len(seedCategories))
		for i, typ := range seedCategories {
			c, err := s.categories.Create(ctx, typ)
			if err != nil {
				return err
			}
			ids[i] = c.ID
		}
		for _, sq := range seedQuestions {
			q := sq.question
			q.Category = ids[sq.category]
			if _, err := s.questions.Create(ctx, &q); err != nil {
				return err
			}
		}
		s.logger.Info(ctx, "trivia seeded", "categories", len(ids), "questions", len(seedQuestions))
		return nil
	})
}
