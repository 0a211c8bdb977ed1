package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGen struct {
	name  string
	out   string
	err   error
	calls int
}

func (f *fakeGen) Name() string { return f.name }

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.out, f.err
}

type fakeStream struct {
	chunks []string
	err    error
}

func (f fakeStream) StreamAnswer(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	out := make(chan string, len(f.chunks))
	errs := make(chan error, 1)
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	if f.err != nil {
		errs <- f.err
	}
	close(errs)
	return out, errs
}

func (fakeStream) Close() error { return nil }

func TestCollect(t *testing.T) {
	got, err := Collect(context.Background(), fakeStream{chunks: []string{"Hel", "lo ", "there"}}, "p")
	if err != nil || got != "Hello there" {
		t.Errorf("Collect = %q, %v", got, err)
	}

	boom := errors.New("stream broke")
	if _, err := Collect(context.Background(), fakeStream{chunks: []string{"x"}, err: boom}, "p"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestChain_FallsThroughOnce(t *testing.T) {
	primary := &fakeGen{name: "primary", err: errors.New("quota")}
	secondary := &fakeGen{name: "secondary", out: "  a perfectly fine reply  "}

	out, name, err := NewChain(primary, nil, secondary).Generate(context.Background(), "p", func(raw string) (string, bool) {
		s := strings.TrimSpace(raw)
		return s, len(s) > 10
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "a perfectly fine reply" || name != "secondary" {
		t.Errorf("out=%q name=%q", out, name)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls primary=%d secondary=%d, want 1 each", primary.calls, secondary.calls)
	}
}

func TestChain_AllRejected(t *testing.T) {
	a := &fakeGen{name: "a", out: "short"}
	b := &fakeGen{name: "b", out: ""}

	_, _, err := NewChain(a, b).Generate(context.Background(), "p", func(raw string) (string, bool) {
		return raw, len(raw) > 10
	})
	if !errors.Is(err, ErrRejected) {
		t.Errorf("err = %v, want ErrRejected", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Error("each generator should be tried exactly once")
	}
}

func TestChain_Empty(t *testing.T) {
	var c *Chain
	if _, _, err := c.Generate(context.Background(), "p", nil); !errors.Is(err, ErrNoGenerators) {
		t.Errorf("nil chain err = %v", err)
	}
	if _, _, err := NewChain().Generate(context.Background(), "p", nil); !errors.Is(err, ErrNoGenerators) {
		t.Errorf("empty chain err = %v", err)
	}
}

func TestChain_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &fakeGen{name: "g", out: "would have worked"}
	if _, _, err := NewChain(g).Generate(ctx, "p", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if g.calls != 0 {
		t.Error("generator called after cancellation")
	}
}
