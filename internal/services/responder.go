package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/providers/llm"
	"github.com/sirupsen/logrus"
)

type ResponseRequest struct {
	History []interview.Turn
	Answer  string
	Tech    string
	Round   int
}

// Responder produces the interviewer's reply to a candidate answer. ok is
// false when no usable reply could be generated.
type Responder interface {
	Respond(ctx context.Context, req ResponseRequest) (reply string, ok bool)
}

const minReplyLength = 10

type llmResponder struct {
	chain   *llm.Chain
	timeout time.Duration
	log     *logrus.Logger
}

func NewResponder(chain *llm.Chain, timeout time.Duration, log *logrus.Logger) Responder {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &llmResponder{chain: chain, timeout: timeout, log: log}
}

func (r *llmResponder) Respond(ctx context.Context, req ResponseRequest) (string, bool) {
	if r.chain.Len() == 0 {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := buildInterviewPrompt(req)
	reply, model, err := r.chain.Generate(ctx, prompt, func(raw string) (string, bool) {
		s := cleanReply(raw, prompt)
		return s, utf8.RuneCountInString(s) > minReplyLength
	})
	if err != nil {
		r.log.WithError(err).WithField("round", req.Round).Warn("interview reply generation failed")
		return "", false
	}
	r.log.WithFields(logrus.Fields{"model": model, "round": req.Round}).Debug("interview reply generated")
	return reply, true
}

func buildInterviewPrompt(req ResponseRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a friendly senior interviewer running round %d (%s) of a %s interview.\n",
		req.Round, interview.RoundTitle(req.Round), interview.TechLabel(req.Tech))
	sb.WriteString("Reply to the candidate in one or two short sentences: acknowledge the answer and, if useful, ask a brief follow-up. Do not grade the answer.\n")
	if len(req.History) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, t := range req.History {
			fmt.Fprintf(&sb, "%s: %s\n", speakerLabel(t.Speaker), t.Message)
		}
	}
	fmt.Fprintf(&sb, "\nCandidate's latest answer: %s\nInterviewer:", req.Answer)
	return sb.String()
}

func speakerLabel(speaker string) string {
	if speaker == interview.SpeakerInterviewer {
		return "Interviewer"
	}
	return "Candidate"
}

// cleanReply strips an echoed prompt and a leading speaker label.
func cleanReply(raw, prompt string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, strings.TrimSpace(prompt))
	s = strings.TrimSpace(s)
	for _, label := range []string{"Interviewer:", "AI:", "Assistant:"} {
		if len(s) >= len(label) && strings.EqualFold(s[:len(label)], label) {
			s = strings.TrimSpace(s[len(label):])
		}
	}
	return strings.Trim(s, `"`)
}
