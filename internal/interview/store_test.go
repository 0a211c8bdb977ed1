package interview

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func basicQuestions(track string) map[int][]string {
	return map[int][]string{1: BasicQuestions(track)}
}

func TestStore_CreateAssignsPrefixedUniqueIDs(t *testing.T) {
	s := NewStore()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		sess := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))
		if !strings.HasPrefix(sess.ID, "interview_") {
			t.Fatalf("basic id %q missing prefix", sess.ID)
		}
		if seen[sess.ID] {
			t.Fatalf("duplicate id %q", sess.ID)
		}
		seen[sess.ID] = true
	}

	adv := s.Create(RealFlow, "fullstack", "react", RoundsToQuestions(RealRounds("react")))
	if !strings.HasPrefix(adv.ID, "real_interview_") {
		t.Errorf("real id %q missing prefix", adv.ID)
	}
}

func TestStore_CreateRegeneratesCollidingID(t *testing.T) {
	s := NewStore(WithIDGenerator(func(Kind, time.Time) string { return "interview_fixed" }))

	first := s.Create(BasicFlow, "backend", "", basicQuestions("backend"))
	second := s.Create(BasicFlow, "backend", "", basicQuestions("backend"))

	if first.ID != "interview_fixed" {
		t.Fatalf("first id = %q", first.ID)
	}
	if second.ID == first.ID {
		t.Fatal("second session reused a live id")
	}
	if st := s.Stats(); st.Active != 2 {
		t.Errorf("Active = %d, want 2", st.Active)
	}
}

func TestStore_QuestionsAreSnapshotted(t *testing.T) {
	s := NewStore()
	qs := basicQuestions("frontend")
	sess := s.Create(BasicFlow, "frontend", "", qs)

	qs[1][0] = "mutated"

	got, err := s.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Questions[1][0] == "mutated" {
		t.Error("store kept a reference to the caller's questions")
	}
}

func TestStore_TakeIsOneShot(t *testing.T) {
	s := NewStore()
	sess := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))

	if err := s.Update(sess.ID, func(ss *Session) error {
		ss.SetAnswer(1, 0, "hello")
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Take(sess.ID)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if len(got.Answers[1]) != 1 || got.Answers[1][0] != "hello" {
		t.Errorf("answers = %v", got.Answers[1])
	}

	if _, err := s.Take(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Take err = %v, want ErrNotFound", err)
	}
	if err := s.Update(sess.ID, func(*Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update after Take err = %v, want ErrNotFound", err)
	}
}

func TestStore_UnknownID(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("interview_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := s.Take("interview_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Take err = %v", err)
	}
}

func TestStore_ExpiredLooksLikeConsumed(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(WithClock(clock.Now))

	expiring := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))
	consumed := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))

	if _, err := s.Take(consumed.ID); err != nil {
		t.Fatalf("Take: %v", err)
	}
	clock.Advance(BasicFlow.TTL)

	_, errExpired := s.Take(expiring.ID)
	_, errConsumed := s.Take(consumed.ID)
	if !errors.Is(errExpired, ErrNotFound) || !errors.Is(errConsumed, ErrNotFound) {
		t.Fatalf("expired err = %v, consumed err = %v", errExpired, errConsumed)
	}
	if errExpired != errConsumed {
		t.Errorf("errors differ: %v vs %v", errExpired, errConsumed)
	}
}

func TestStore_TTLPerFlow(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(WithClock(clock.Now))

	basic := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))
	adv := s.Create(RealFlow, "fullstack", "node", RoundsToQuestions(RealRounds("node")))

	clock.Advance(90 * time.Minute)

	if _, err := s.Get(basic.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("basic session still live after 90m: %v", err)
	}
	if _, err := s.Get(adv.ID); err != nil {
		t.Errorf("real session expired early: %v", err)
	}

	clock.Advance(30 * time.Minute)
	if _, err := s.Get(adv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("real session still live after 2h: %v", err)
	}
}

func TestStore_SweepRemovesOnlyExpired(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(WithClock(clock.Now))

	for i := 0; i < 3; i++ {
		s.Create(BasicFlow, "backend", "", basicQuestions("backend"))
	}
	keep := s.Create(RealFlow, "backend", "java", RoundsToQuestions(RealRounds("java")))

	clock.Advance(time.Hour + time.Second)
	if s.Len() != 4 {
		t.Errorf("Len before sweep = %d, want 4", s.Len())
	}
	if n := s.Sweep(); n != 3 {
		t.Errorf("Sweep removed %d, want 3", n)
	}
	if _, err := s.Get(keep.ID); err != nil {
		t.Errorf("live session swept: %v", err)
	}
	if n := s.Sweep(); n != 0 {
		t.Errorf("second Sweep removed %d, want 0", n)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := NewStore()
	sess := s.Create(BasicFlow, "backend", "", basicQuestions("backend"))

	s.Delete(sess.ID)
	s.Delete(sess.ID)

	if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete err = %v", err)
	}
}

func TestStore_StatsBreakdown(t *testing.T) {
	s := NewStore()
	s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))
	s.Create(BasicFlow, "backend", "", basicQuestions("backend"))
	s.Create(RealFlow, "fullstack", "python", RoundsToQuestions(RealRounds("python")))

	st := s.Stats()
	if st.Active != 3 {
		t.Errorf("Active = %d, want 3", st.Active)
	}
	if st.ByKind[KindBasic] != 2 || st.ByKind[KindReal] != 1 {
		t.Errorf("ByKind = %v", st.ByKind)
	}
}

func TestStore_ConcurrentDistinctSessions(t *testing.T) {
	s := NewStore()
	a := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))
	b := s.Create(RealFlow, "backend", "node", RoundsToQuestions(RealRounds("node")))

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Update(a.ID, func(ss *Session) error {
				ss.SetAnswer(1, i, fmt.Sprintf("a-%d", i))
				return nil
			})
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = s.Update(b.ID, func(ss *Session) error {
				ss.AppendAnswer(2, fmt.Sprintf("b-%d", i))
				ss.AddTurn(SpeakerCandidate, "b")
				return nil
			})
		}(i)
	}
	wg.Wait()

	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)

	if len(gotA.Answers[1]) != n {
		t.Fatalf("session a has %d answers, want %d", len(gotA.Answers[1]), n)
	}
	for i, ans := range gotA.Answers[1] {
		if ans != fmt.Sprintf("a-%d", i) {
			t.Fatalf("session a answer %d = %q", i, ans)
		}
	}
	if len(gotA.Answers[2]) != 0 || len(gotA.History) != 0 {
		t.Error("session a received session b's writes")
	}

	if len(gotB.Answers[2]) != n || len(gotB.History) != n {
		t.Fatalf("session b answers=%d turns=%d, want %d", len(gotB.Answers[2]), len(gotB.History), n)
	}
	for _, ans := range gotB.Answers[2] {
		if !strings.HasPrefix(ans, "b-") {
			t.Fatalf("session b has foreign answer %q", ans)
		}
	}
}

func TestStore_ConcurrentSameSessionWrites(t *testing.T) {
	s := NewStore()
	adv := s.Create(RealFlow, "backend", "go", RoundsToQuestions(RealRounds("go")))
	basic := s.Create(BasicFlow, "backend", "", basicQuestions("backend"))

	if err := s.Update(basic.ID, func(ss *Session) error {
		ss.SetAnswer(1, 4, "kept")
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("r2-%d", i)
			_ = s.Update(adv.ID, func(ss *Session) error {
				ss.AppendAnswer(2, msg)
				ss.AddTurn(SpeakerCandidate, msg)
				return nil
			})
		}(i)
		go func(i int) {
			defer wg.Done()
			idx := i % 3
			_ = s.Update(basic.ID, func(ss *Session) error {
				ss.SetAnswer(1, idx, fmt.Sprintf("q%d-%d", idx, i))
				return nil
			})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Get(adv.ID)
			_ = s.Stats()
			_ = s.Sweep()
		}()
	}
	wg.Wait()

	gotAdv, err := s.Get(adv.ID)
	if err != nil {
		t.Fatalf("Get real: %v", err)
	}
	answers := gotAdv.Answers[2]
	if len(answers) != n || len(gotAdv.History) != n {
		t.Fatalf("real answers=%d turns=%d, want %d", len(answers), len(gotAdv.History), n)
	}
	seen := map[string]bool{}
	for k, ans := range answers {
		if gotAdv.History[k].Message != ans {
			t.Fatalf("turn %d = %q, answer %d = %q", k, gotAdv.History[k].Message, k, ans)
		}
		if seen[ans] {
			t.Fatalf("answer %q recorded twice", ans)
		}
		seen[ans] = true
	}
	if len(gotAdv.Answers[1]) != 0 || len(gotAdv.Answers[3]) != 0 {
		t.Errorf("other rounds touched: %v", gotAdv.Answers)
	}

	gotBasic, err := s.Get(basic.ID)
	if err != nil {
		t.Fatalf("Get basic: %v", err)
	}
	pos := gotBasic.Answers[1]
	if len(pos) != 5 {
		t.Fatalf("basic answers = %v, want 5 positions", pos)
	}
	for idx := 0; idx < 3; idx++ {
		if !strings.HasPrefix(pos[idx], fmt.Sprintf("q%d-", idx)) {
			t.Errorf("position %d = %q", idx, pos[idx])
		}
	}
	if pos[3] != "" || pos[4] != "kept" {
		t.Errorf("untouched positions = %q, %q", pos[3], pos[4])
	}
}

func TestStore_ConcurrentTakeSingleWinner(t *testing.T) {
	s := NewStore()
	sess := s.Create(BasicFlow, "frontend", "", basicQuestions("frontend"))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Take(sess.ID); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Sweep()
	}()
	wg.Wait()

	if wins != 1 {
		t.Errorf("Take succeeded %d times, want 1", wins)
	}
}

func TestSession_SetAnswerKeepsOtherPositions(t *testing.T) {
	sess := &Session{Answers: map[int][]string{}}
	sess.SetAnswer(1, 2, "third")
	sess.SetAnswer(1, 0, "first")
	sess.SetAnswer(1, 2, "third again")

	want := []string{"first", "", "third again"}
	got := sess.Answers[1]
	if len(got) != len(want) {
		t.Fatalf("answers = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSession_RecentTurns(t *testing.T) {
	sess := &Session{}
	if got := sess.RecentTurns(3); got != nil {
		t.Errorf("empty history returned %v", got)
	}
	for i := 0; i < 5; i++ {
		sess.AddTurn(SpeakerCandidate, fmt.Sprint(i))
	}
	got := sess.RecentTurns(3)
	if len(got) != 3 || got[0].Message != "2" || got[2].Message != "4" {
		t.Errorf("RecentTurns = %v", got)
	}
}
