package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/providers/llm"
	"github.com/ignitai/ignitai-backend/internal/quiz"
	"github.com/ignitai/ignitai-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	SourceAI        = "ai"
	SourceFallback  = "fallback"
	SourceHeuristic = "heuristic"
)

type GenerateQuizInput struct {
	Topics     []string
	Count      int
	Difficulty string
}

type GenerateQuizResult struct {
	Questions []models.QuizQuestion `json:"questions"`
	Source    string                `json:"source"`
}

type CodeMatchInput struct {
	HTML         string
	CSS          string
	ExpectedHTML string
	ExpectedCSS  string
}

type QuizService interface {
	Generate(ctx context.Context, in GenerateQuizInput) (*GenerateQuizResult, error)
	CodeMatch(ctx context.Context, in CodeMatchInput) (*models.CodeMatchResult, error)
}

type quizService struct {
	chain   *llm.Chain
	timeout time.Duration
	log     *logrus.Logger
}

func NewQuizService(chain *llm.Chain, timeout time.Duration, log *logrus.Logger) QuizService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &quizService{chain: chain, timeout: timeout, log: log}
}

func (s *quizService) Generate(ctx context.Context, in GenerateQuizInput) (*GenerateQuizResult, error) {
	const op = "QuizService.Generate"

	topics := make([]string, 0, len(in.Topics))
	for _, t := range in.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "topics is required", nil)
	}
	count := quiz.ClampCount(in.Count)
	difficulty := strings.ToLower(strings.TrimSpace(in.Difficulty))
	if difficulty == "" {
		difficulty = "medium"
	}

	if s.chain.Len() > 0 {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		var parsed []models.QuizQuestion
		_, model, err := s.chain.Generate(ctx, quizPrompt(topics, count, difficulty), func(raw string) (string, bool) {
			qs, err := quiz.Parse(raw)
			if err != nil {
				return "", false
			}
			parsed = qs
			return raw, true
		})
		if err == nil {
			if len(parsed) > count {
				parsed = parsed[:count]
			}
			s.log.WithFields(logrus.Fields{"model": model, "count": len(parsed)}).Debug("quiz generated")
			return &GenerateQuizResult{Questions: parsed, Source: SourceAI}, nil
		}
		s.log.WithError(err).Warn("quiz generation failed, using question bank")
	}

	return &GenerateQuizResult{Questions: quiz.Fallback(topics, count), Source: SourceFallback}, nil
}

func quizPrompt(topics []string, count int, difficulty string) string {
	return fmt.Sprintf(`Create %d %s difficulty multiple-choice questions about: %s.
Respond with only a JSON array. Each item must have the fields
"question" (string), "options" (array of 4 strings), "answer" (exactly one of the options),
"explanation" (one sentence) and "topic" (one of the listed topics).`,
		count, difficulty, strings.Join(topics, ", "))
}

func (s *quizService) CodeMatch(ctx context.Context, in CodeMatchInput) (*models.CodeMatchResult, error) {
	const op = "QuizService.CodeMatch"

	if strings.TrimSpace(in.ExpectedHTML) == "" && strings.TrimSpace(in.ExpectedCSS) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "expectedHtml or expectedCss is required", nil)
	}

	m := quiz.CodeMatch(in.HTML, in.CSS, in.ExpectedHTML, in.ExpectedCSS)
	res := &models.CodeMatchResult{
		Score:     m.Score,
		HTMLScore: m.HTMLScore,
		CSSScore:  m.CSSScore,
		Passed:    m.Passed(),
		Feedback:  codeMatchFeedback(m),
		Source:    SourceHeuristic,
	}

	if s.chain.Len() == 0 {
		return res, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, _, err := s.chain.Generate(ctx, codeMatchPrompt(in, m), func(raw string) (string, bool) {
		t := strings.TrimSpace(raw)
		return t, len(t) > minReplyLength
	})
	if err != nil {
		s.log.WithError(err).Debug("code-match feedback generation failed")
		return res, nil
	}
	res.Feedback = text
	res.Source = SourceAI
	return res, nil
}

func codeMatchFeedback(m quiz.Match) string {
	switch {
	case m.Score >= quiz.PassScore:
		return "Great job! Your code closely matches the target."
	case m.Score >= 50:
		return "You're getting there. Compare your structure and styles with the target and close the remaining gaps."
	default:
		return "Your code differs significantly from the target. Start by matching the element structure, then the styles."
	}
}

func codeMatchPrompt(in CodeMatchInput, m quiz.Match) string {
	return fmt.Sprintf(`A student is recreating a web page. Their similarity score is %d/100.
Give two or three sentences of encouraging, specific feedback on what to change. Do not restate the score.

Target HTML:
%s

Target CSS:
%s

Student HTML:
%s

Student CSS:
%s`, m.Score, in.ExpectedHTML, in.ExpectedCSS, in.HTML, in.CSS)
}
