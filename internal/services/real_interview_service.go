package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const contextTurns = 3

type StartRealInterviewInput struct {
	Track string
	Tech  string
}

type StartRealInterviewResult struct {
	SessionID         string            `json:"sessionId"`
	Message           string            `json:"message"`
	Rounds            []interview.Round `json:"rounds"`
	QuestionsPerRound int               `json:"questionsPerRound"`
}

type SubmitRealAnswerInput struct {
	SessionID     string
	Answer        string
	Round         int
	QuestionIndex int
	Tech          string
}

type RealAnalysis struct {
	interview.Analysis
	Round         int `json:"round"`
	QuestionIndex int `json:"questionIndex"`
}

type SubmitRealAnswerResult struct {
	AIResponse string       `json:"aiResponse"`
	Analysis   RealAnalysis `json:"analysis"`
}

type RealInterviewService interface {
	Start(ctx context.Context, in StartRealInterviewInput) (*StartRealInterviewResult, error)
	SubmitAnswer(ctx context.Context, in SubmitRealAnswerInput) (*SubmitRealAnswerResult, error)
	Results(ctx context.Context, sessionID string) (*interview.RealReport, error)
}

type realInterviewService struct {
	store     *interview.Store
	responder Responder
	archive   ResultArchive
	log       *logrus.Logger
}

func NewRealInterviewService(store *interview.Store, responder Responder, archive ResultArchive, log *logrus.Logger) RealInterviewService {
	return &realInterviewService{store: store, responder: responder, archive: archive, log: log}
}

func (s *realInterviewService) Start(ctx context.Context, in StartRealInterviewInput) (*StartRealInterviewResult, error) {
	track := interview.LookupTrack(in.Track)
	tech := strings.TrimSpace(in.Tech)
	if tech == "" {
		tech = interview.DefaultTech
	}

	rounds := interview.RealRounds(tech)
	sess := s.store.Create(interview.RealFlow, track.Key, tech, interview.RoundsToQuestions(rounds))

	return &StartRealInterviewResult{
		SessionID: sess.ID,
		Message: "Welcome to your " + interview.TechLabel(tech) +
			" interview. We will go through three rounds: technical basics, problem solving and behavioral questions.",
		Rounds:            rounds,
		QuestionsPerRound: interview.QuestionsPerRound,
	}, nil
}

// SubmitAnswer records the answer, then asks the responder for a reply with
// no session lock held. The reply is added to the history only if the
// session is still live once it arrives.
func (s *realInterviewService) SubmitAnswer(ctx context.Context, in SubmitRealAnswerInput) (*SubmitRealAnswerResult, error) {
	const op = "RealInterviewService.SubmitAnswer"

	if strings.TrimSpace(in.SessionID) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "sessionId is required", nil)
	}
	if strings.TrimSpace(in.Answer) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "answer is required", nil)
	}
	if in.Round < 1 || in.Round > interview.RealFlow.Rounds {
		return nil, utils.E(utils.CodeInvalidArgument, op, "round must be between 1 and 3", nil)
	}
	if in.QuestionIndex < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "questionIndex must not be negative", nil)
	}

	var req ResponseRequest
	err := s.store.Update(in.SessionID, func(sess *interview.Session) error {
		tech := strings.TrimSpace(in.Tech)
		if tech == "" {
			tech = sess.Tech
		}
		// the prompt carries the new answer on its own line
		req = ResponseRequest{
			History: sess.RecentTurns(contextTurns),
			Answer:  in.Answer,
			Tech:    tech,
			Round:   in.Round,
		}

		sess.AppendAnswer(in.Round, in.Answer)
		sess.AddTurn(interview.SpeakerCandidate, in.Answer)
		return nil
	})
	if err != nil {
		return nil, notFound(op, err)
	}

	reply, ok := s.responder.Respond(ctx, req)
	if !ok {
		reply = interview.FallbackResponse(in.Round, in.QuestionIndex)
	}

	err = s.store.Update(in.SessionID, func(sess *interview.Session) error {
		sess.AddTurn(interview.SpeakerInterviewer, reply)
		return nil
	})
	if err != nil && !errors.Is(err, interview.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "internal error", err)
	}

	return &SubmitRealAnswerResult{
		AIResponse: reply,
		Analysis: RealAnalysis{
			Analysis:      interview.Analyze(in.Answer),
			Round:         in.Round,
			QuestionIndex: in.QuestionIndex,
		},
	}, nil
}

func (s *realInterviewService) Results(ctx context.Context, sessionID string) (*interview.RealReport, error) {
	const op = "RealInterviewService.Results"

	sess, err := s.store.Take(sessionID)
	if err != nil {
		return nil, notFound(op, err)
	}

	report := interview.BuildRealReport(sess)
	if err := s.archive.Record(ctx, sess, report.OverallScore, report.Strengths, report); err != nil {
		s.log.WithError(err).WithField("session_id", sess.ID).Warn("archive interview result failed")
	}
	return &report, nil
}
