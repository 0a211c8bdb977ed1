package llm

import (
	"context"
	"errors"
	"strings"
)

type Provider interface {
	// StreamAnswer returns a stream of text chunks (incremental).
	StreamAnswer(ctx context.Context, prompt string) (chunks <-chan string, errs <-chan error)
	Close() error
}

// Generator produces a complete text response for a prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Collect drains a provider stream into a single string.
func Collect(ctx context.Context, p Provider, prompt string) (string, error) {
	chunks, errs := p.StreamAnswer(ctx, prompt)

	var sb strings.Builder
	for c := range chunks {
		sb.WriteString(c)
	}
	if err := <-errs; err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var (
	ErrNoGenerators = errors.New("llm: no generators configured")
	ErrRejected     = errors.New("llm: response rejected")
)

// Validate turns raw model output into an accepted result, or rejects it.
type Validate func(raw string) (string, bool)

// Chain tries each generator once, in order, and returns the first output
// that passes validation. There are no retries.
type Chain struct {
	gens []Generator
}

func NewChain(gens ...Generator) *Chain {
	c := &Chain{}
	for _, g := range gens {
		if g != nil {
			c.gens = append(c.gens, g)
		}
	}
	return c
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.gens)
}

// Generate returns the accepted text and the name of the generator that
// produced it.
func (c *Chain) Generate(ctx context.Context, prompt string, validate Validate) (string, string, error) {
	if c.Len() == 0 {
		return "", "", ErrNoGenerators
	}

	var errs []error
	for _, g := range c.gens {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		raw, err := g.Generate(ctx, prompt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if validate == nil {
			if strings.TrimSpace(raw) != "" {
				return raw, g.Name(), nil
			}
			errs = append(errs, ErrRejected)
			continue
		}
		if out, ok := validate(raw); ok {
			return out, g.Name(), nil
		}
		errs = append(errs, ErrRejected)
	}
	return "", "", errors.Join(errs...)
}
