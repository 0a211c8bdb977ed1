package services

import (
	"context"
	"testing"
	"time"

	"github.com/ignitai/ignitai-backend/internal/logger"
	"github.com/ignitai/ignitai-backend/internal/providers/llm"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

const generatedQuiz = "```json\n[" +
	`{"question":"Q1","options":["a","b","c","d"],"answer":"a","explanation":"e","topic":"css"},` +
	`{"question":"Q2","options":["a","b","c","d"],"answer":"d","explanation":"e","topic":"css"},` +
	`{"question":"Q3","options":["a","b","c","d"],"answer":"b","explanation":"e","topic":"css"}` +
	"]\n```"

func TestQuizService_GenerateFromModel(t *testing.T) {
	gen := &fakeGen{name: "primary", out: generatedQuiz}
	svc := NewQuizService(llm.NewChain(gen), time.Second, logger.Discard())

	res, err := svc.Generate(context.Background(), GenerateQuizInput{Topics: []string{"css"}, Count: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceAI || len(res.Questions) != 2 || res.Questions[1].Answer != "d" {
		t.Errorf("result = %+v", res)
	}
}

func TestQuizService_GenerateFallsBack(t *testing.T) {
	primary := &fakeGen{name: "primary", out: "sorry, I cannot do that"}
	secondary := &fakeGen{name: "secondary", err: errBoom}
	svc := NewQuizService(llm.NewChain(primary, secondary), time.Second, logger.Discard())

	res, err := svc.Generate(context.Background(), GenerateQuizInput{Topics: []string{"html"}, Count: 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceFallback || len(res.Questions) != 4 || res.Questions[0].Topic != "html" {
		t.Errorf("result = %+v", res)
	}

	res, _ = NewQuizService(nil, 0, logger.Discard()).Generate(context.Background(), GenerateQuizInput{Topics: []string{"js"}})
	if res.Source != SourceFallback || len(res.Questions) != 5 {
		t.Errorf("no-model result = %+v", res)
	}
}

func TestQuizService_GenerateRequiresTopics(t *testing.T) {
	svc := NewQuizService(nil, 0, logger.Discard())
	if _, err := svc.Generate(context.Background(), GenerateQuizInput{Topics: []string{" "}}); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}

func TestQuizService_CodeMatch(t *testing.T) {
	in := CodeMatchInput{
		HTML:         `<div class="box"></div>`,
		ExpectedHTML: `<div class="box"></div>`,
	}

	res, err := NewQuizService(nil, 0, logger.Discard()).CodeMatch(context.Background(), in)
	if err != nil {
		t.Fatalf("CodeMatch: %v", err)
	}
	if res.Score != 100 || !res.Passed || res.Source != SourceHeuristic || res.Feedback == "" || res.CSSScore != nil {
		t.Errorf("heuristic result = %+v", res)
	}

	gen := &fakeGen{name: "primary", out: "Well done, the structure matches exactly."}
	res, _ = NewQuizService(llm.NewChain(gen), time.Second, logger.Discard()).CodeMatch(context.Background(), in)
	if res.Source != SourceAI || res.Feedback != gen.out || res.Score != 100 {
		t.Errorf("ai result = %+v", res)
	}

	if _, err := NewQuizService(nil, 0, logger.Discard()).CodeMatch(context.Background(), CodeMatchInput{HTML: "<p></p>"}); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("missing target err = %v", err)
	}
}
