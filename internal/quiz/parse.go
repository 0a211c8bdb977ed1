package quiz

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ignitai/ignitai-backend/internal/models"
)

var ErrNoQuestions = errors.New("quiz: no valid questions in output")

// Parse extracts a JSON array of questions from model output. Code fences and
// text around the array are ignored. Questions whose answer is not one of
// their options are dropped; a single letter answer ("B") is resolved to the
// matching option.
func Parse(raw string) ([]models.QuizQuestion, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start, end := strings.Index(s, "["), strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, ErrNoQuestions
	}

	var qs []models.QuizQuestion
	if err := json.Unmarshal([]byte(s[start:end+1]), &qs); err != nil {
		return nil, err
	}

	out := qs[:0]
	for _, q := range qs {
		if q, ok := normalize(q); ok {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

func normalize(q models.QuizQuestion) (models.QuizQuestion, bool) {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)
	if q.Question == "" || len(q.Options) < 2 {
		return q, false
	}
	for i := range q.Options {
		q.Options[i] = strings.TrimSpace(q.Options[i])
	}

	for _, o := range q.Options {
		if o == q.Answer {
			return q, true
		}
	}
	if len(q.Answer) == 1 {
		i := int(strings.ToUpper(q.Answer)[0] - 'A')
		if i >= 0 && i < len(q.Options) {
			q.Answer = q.Options[i]
			return q, true
		}
	}
	return q, false
}
