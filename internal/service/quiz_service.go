package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quizforge/internal/genai"
	"quizforge/internal/models"
)

// ErrBadAIResponse means the model reply could not be parsed as quiz JSON.
// Handlers surface it as a server error, not a soft failure.
var ErrBadAIResponse = errors.New("AI returned invalid JSON")

// QuizService builds prompts, calls the generative model, and parses its
// free-form reply into structured questions.
type QuizService struct {
	gen genai.TextGenerator
}

func NewQuizService(gen genai.TextGenerator) *QuizService {
	return &QuizService{gen: gen}
}

const promptTemplate = `Generate a %s level multiple choice quiz on:

Topic: %s
Number of questions: %d

Return ONLY JSON.
Do NOT add explanations or markdown.
Follow EXACT structure:

{
    "questions": [
        {
            "question": "string",
            "options": ["A","B","C","D"],
            "correct_answer": "A"
        }
    ]
}`

// Generate asks the model for a quiz and parses the reply. The model tends to
// wrap its JSON in prose or markdown fences, so the substring between the
// first '{' and the last '}' is treated as the payload. Beyond parsing, the
// structure is passed through unchecked.
func (s *QuizService) Generate(ctx context.Context, topic, difficulty string, numQuestions int) (models.Quiz, error) {
	prompt := fmt.Sprintf(promptTemplate, difficulty, topic, numQuestions)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("generate quiz: %w", err)
	}

	payload, ok := extractJSONObject(text)
	if !ok {
		return models.Quiz{}, ErrBadAIResponse
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		return models.Quiz{}, fmt.Errorf("%w: %v", ErrBadAIResponse, err)
	}
	return quiz, nil
}

// extractJSONObject returns the substring from the first '{' to the last '}'
// of s, tolerating surrounding prose the model might add.
func extractJSONObject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
