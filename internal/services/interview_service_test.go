package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/logger"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

func intPtr(i int) *int { return &i }

func newBasicService(repo *fakeResultRepo) (InterviewService, *interview.Store) {
	store := interview.NewStore()
	archive := NewResultArchive(nil)
	if repo != nil {
		archive = NewResultArchive(repo)
	}
	return NewInterviewService(store, archive, logger.Discard()), store
}

func TestInterviewService_StartUsesTrackBank(t *testing.T) {
	svc, _ := newBasicService(nil)
	ctx := context.Background()

	res, err := svc.Start(ctx, "devops")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.HasPrefix(res.SessionID, "interview_") {
		t.Errorf("session id %q", res.SessionID)
	}
	if len(res.Questions) == 0 || res.Questions[0] != interview.BasicQuestions("devops")[0] {
		t.Errorf("questions = %v", res.Questions)
	}

	res, _ = svc.Start(ctx, "underwater-basketry")
	if res.Questions[0] != interview.BasicQuestions(interview.DefaultTrack)[0] {
		t.Error("unknown track should fall back to the default bank")
	}
}

func TestInterviewService_SubmitAnswer(t *testing.T) {
	svc, _ := newBasicService(nil)
	ctx := context.Background()
	start, _ := svc.Start(ctx, "frontend")
	last := len(start.Questions) - 1

	res, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{SessionID: start.SessionID, Answer: "two words", QuestionIndex: intPtr(0)})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Analysis.WordCount != 2 || res.NextQuestion == nil || *res.NextQuestion != 1 {
		t.Errorf("result = %+v", res)
	}

	res, err = svc.SubmitAnswer(ctx, SubmitAnswerInput{SessionID: start.SessionID, Answer: "done", QuestionIndex: intPtr(last)})
	if err != nil {
		t.Fatalf("SubmitAnswer last: %v", err)
	}
	if res.NextQuestion != nil {
		t.Errorf("nextQuestion after last = %d, want nil", *res.NextQuestion)
	}

	b, _ := json.Marshal(res)
	if !strings.Contains(string(b), `"nextQuestion":null`) {
		t.Errorf("json = %s", b)
	}
}

func TestInterviewService_SubmitAnswerValidation(t *testing.T) {
	svc, _ := newBasicService(nil)
	ctx := context.Background()
	start, _ := svc.Start(ctx, "backend")

	cases := []struct {
		name string
		in   SubmitAnswerInput
		code utils.Code
	}{
		{"missing session", SubmitAnswerInput{Answer: "a", QuestionIndex: intPtr(0)}, utils.CodeInvalidArgument},
		{"missing answer", SubmitAnswerInput{SessionID: start.SessionID, QuestionIndex: intPtr(0)}, utils.CodeInvalidArgument},
		{"missing index", SubmitAnswerInput{SessionID: start.SessionID, Answer: "a"}, utils.CodeInvalidArgument},
		{"index too large", SubmitAnswerInput{SessionID: start.SessionID, Answer: "a", QuestionIndex: intPtr(99)}, utils.CodeInvalidArgument},
		{"negative index", SubmitAnswerInput{SessionID: start.SessionID, Answer: "a", QuestionIndex: intPtr(-1)}, utils.CodeInvalidArgument},
		{"unknown session", SubmitAnswerInput{SessionID: "interview_nope", Answer: "a", QuestionIndex: intPtr(0)}, utils.CodeNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.SubmitAnswer(ctx, c.in)
			if !utils.IsCode(err, c.code) {
				t.Errorf("err = %v, want code %s", err, c.code)
			}
		})
	}
}

func TestInterviewService_ResultsOnceAndArchived(t *testing.T) {
	repo := &fakeResultRepo{}
	svc, _ := newBasicService(repo)
	ctx := context.Background()

	start, _ := svc.Start(ctx, "frontend")
	if _, err := svc.SubmitAnswer(ctx, SubmitAnswerInput{
		SessionID:     start.SessionID,
		Answer:        "I love react and enjoy building UI interfaces for users",
		QuestionIndex: intPtr(0),
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	report, err := svc.Results(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if report.Score != 71 || report.Track != "frontend" {
		t.Errorf("report = %+v", report)
	}

	_, err = svc.Results(ctx, start.SessionID)
	if !utils.IsCode(err, utils.CodeNotFound) || utils.SafeMessage(err) != "Session not found" {
		t.Errorf("second Results err = %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("archived %d rows, want 1", len(repo.rows))
	}
	row := repo.rows[0]
	if row.SessionID != start.SessionID || row.Kind != "basic" || row.Score != 71 || len(row.Strengths) != 3 {
		t.Errorf("archived row = %+v", row)
	}
}

func TestInterviewService_ArchiveFailureIsNotSurfaced(t *testing.T) {
	svc, _ := newBasicService(&fakeResultRepo{err: errBoom})
	ctx := context.Background()

	start, _ := svc.Start(ctx, "backend")
	if _, err := svc.Results(ctx, start.SessionID); err != nil {
		t.Fatalf("Results failed because of archive: %v", err)
	}
}

func TestInterviewService_Stats(t *testing.T) {
	svc, store := newBasicService(nil)
	ctx := context.Background()

	svc.Start(ctx, "frontend")
	store.Create(interview.RealFlow, "fullstack", "react", interview.RoundsToQuestions(interview.RealRounds("react")))

	st := svc.Stats(ctx)
	if st.Active != 2 || st.ByKind[interview.KindBasic] != 1 || st.ByKind[interview.KindReal] != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.Timestamp.IsZero() {
		t.Error("missing timestamp")
	}

	b, _ := json.Marshal(st)
	for _, want := range []string{`"activeSessions":2`, `"breakdown":{"basic":1,"real":1}`, `"timestamp"`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("json %s missing %s", b, want)
		}
	}
}
