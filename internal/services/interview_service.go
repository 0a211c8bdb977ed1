package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const sessionNotFoundMsg = "Session not found"

// notFound maps a store miss to the client-facing 404. Expired and consumed
// sessions produce the same error.
func notFound(op string, err error) error {
	if errors.Is(err, interview.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, sessionNotFoundMsg, err)
	}
	return utils.E(utils.CodeInternal, op, "internal error", err)
}

type StartInterviewResult struct {
	SessionID string   `json:"sessionId"`
	Questions []string `json:"questions"`
}

type SubmitAnswerInput struct {
	SessionID     string
	Answer        string
	QuestionIndex *int
}

type SubmitAnswerResult struct {
	Analysis     interview.Analysis `json:"analysis"`
	NextQuestion *int               `json:"nextQuestion"`
}

type StatsResult struct {
	interview.Stats
	Timestamp time.Time `json:"timestamp"`
}

type InterviewService interface {
	Start(ctx context.Context, track string) (*StartInterviewResult, error)
	SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error)
	Results(ctx context.Context, sessionID string) (*interview.BasicReport, error)
	Stats(ctx context.Context) StatsResult
}

type interviewService struct {
	store   *interview.Store
	archive ResultArchive
	log     *logrus.Logger
	now     func() time.Time
}

func NewInterviewService(store *interview.Store, archive ResultArchive, log *logrus.Logger) InterviewService {
	return &interviewService{store: store, archive: archive, log: log, now: time.Now}
}

func (s *interviewService) Start(ctx context.Context, track string) (*StartInterviewResult, error) {
	t := interview.LookupTrack(track)
	sess := s.store.Create(interview.BasicFlow, t.Key, "", map[int][]string{1: t.Questions})
	return &StartInterviewResult{SessionID: sess.ID, Questions: sess.Questions[1]}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error) {
	const op = "InterviewService.SubmitAnswer"

	if strings.TrimSpace(in.SessionID) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "sessionId is required", nil)
	}
	if strings.TrimSpace(in.Answer) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "answer is required", nil)
	}
	if in.QuestionIndex == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "questionIndex is required", nil)
	}
	idx := *in.QuestionIndex

	var total int
	err := s.store.Update(in.SessionID, func(sess *interview.Session) error {
		total = len(sess.Questions[1])
		if idx < 0 || idx >= total {
			return utils.E(utils.CodeInvalidArgument, op, "questionIndex is out of range", nil)
		}
		sess.SetAnswer(1, idx, in.Answer)
		return nil
	})
	if err != nil {
		var ae *utils.AppError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, notFound(op, err)
	}

	res := &SubmitAnswerResult{Analysis: interview.Analyze(in.Answer)}
	if idx+1 < total {
		next := idx + 1
		res.NextQuestion = &next
	}
	return res, nil
}

func (s *interviewService) Results(ctx context.Context, sessionID string) (*interview.BasicReport, error) {
	const op = "InterviewService.Results"

	sess, err := s.store.Take(sessionID)
	if err != nil {
		return nil, notFound(op, err)
	}

	report := interview.BuildBasicReport(sess)
	if err := s.archive.Record(ctx, sess, report.Score, report.Strengths, report); err != nil {
		s.log.WithError(err).WithField("session_id", sess.ID).Warn("archive interview result failed")
	}
	return &report, nil
}

func (s *interviewService) Stats(ctx context.Context) StatsResult {
	return StatsResult{Stats: s.store.Stats(), Timestamp: s.now().UTC()}
}
