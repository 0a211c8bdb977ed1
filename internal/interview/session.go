// Package interview holds the in-memory interview session store and the
// question banks and scoring heuristics for both interview flows.
//
// Sessions live only in process memory. A session is created by a start
// request, mutated by answer submissions and removed either by reading its
// results or when its TTL elapses, whichever happens first.
package interview

import (
	"errors"
	"sort"
	"time"
)

var ErrNotFound = errors.New("interview session not found")

type Kind string

const (
	KindBasic Kind = "basic"
	KindReal  Kind = "real"
)

// Prefix is the id prefix used to tell the flows apart in stats.
func (k Kind) Prefix() string {
	if k == KindReal {
		return "real_interview"
	}
	return "interview"
}

// Flow parameterises the store for one interview generation.
type Flow struct {
	Kind   Kind
	TTL    time.Duration
	Rounds int
}

var (
	BasicFlow = Flow{Kind: KindBasic, TTL: time.Hour, Rounds: 1}
	RealFlow  = Flow{Kind: KindReal, TTL: 2 * time.Hour, Rounds: 3}
)

const (
	SpeakerCandidate   = "candidate"
	SpeakerInterviewer = "interviewer"
)

type Turn struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

type Session struct {
	ID    string
	Kind  Kind
	Track string
	Tech  string

	// round -> questions, fixed at creation
	Questions map[int][]string
	// round -> answers
	Answers map[int][]string
	History []Turn

	StartedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SetAnswer records an answer at a fixed position, growing the round's slice
// with empty answers when needed. Other positions are left untouched.
func (s *Session) SetAnswer(round, index int, answer string) {
	cur := s.Answers[round]
	for len(cur) <= index {
		cur = append(cur, "")
	}
	cur[index] = answer
	s.Answers[round] = cur
}

func (s *Session) AppendAnswer(round int, answer string) {
	s.Answers[round] = append(s.Answers[round], answer)
}

func (s *Session) AddTurn(speaker, message string) {
	s.History = append(s.History, Turn{Speaker: speaker, Message: message})
}

// RecentTurns returns up to n of the latest turns.
func (s *Session) RecentTurns(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	start := len(s.History) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(s.History)-start)
	copy(out, s.History[start:])
	return out
}

// AllAnswers flattens answers across rounds in round order.
func (s *Session) AllAnswers() []string {
	rounds := make([]int, 0, len(s.Answers))
	for r := range s.Answers {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)

	var out []string
	for _, r := range rounds {
		out = append(out, s.Answers[r]...)
	}
	return out
}

func (s *Session) clone() *Session {
	cp := *s
	cp.Questions = cloneRounds(s.Questions)
	cp.Answers = cloneRounds(s.Answers)
	cp.History = append([]Turn(nil), s.History...)
	return &cp
}

func cloneRounds(in map[int][]string) map[int][]string {
	out := make(map[int][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Analysis is echoed back on every submission. It does not affect scoring.
type Analysis struct {
	Length    int `json:"length"`
	WordCount int `json:"wordCount"`
}
