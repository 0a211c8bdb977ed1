package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/providers/mail"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

var errBoom = errors.New("boom")

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type fakeCertRepo struct {
	certs   map[string]models.Certificate
	gets    int
	getErr  error
	inserts []models.Certificate
}

func (r *fakeCertRepo) GetByCertificateID(_ context.Context, id string) (*models.Certificate, error) {
	r.gets++
	if r.getErr != nil {
		return nil, r.getErr
	}
	c, ok := r.certs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCertRepo) InsertMany(_ context.Context, certs []models.Certificate) (int, error) {
	r.inserts = append(r.inserts, certs...)
	return len(certs), nil
}

type fakeFeedbackRepo struct {
	items []models.Feedback
	lists int
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f *models.Feedback) error {
	r.items = append([]models.Feedback{*f}, r.items...)
	return nil
}

func (r *fakeFeedbackRepo) ListNewestFirst(context.Context, int64) ([]models.Feedback, error) {
	r.lists++
	return append([]models.Feedback(nil), r.items...), nil
}

type fakeAppRepo struct {
	created []*models.Application
	err     error
}

func (r *fakeAppRepo) Create(_ context.Context, a *models.Application) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, a)
	return nil
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeUploader struct {
	names []string
	data  [][]byte
	err   error
}

func (u *fakeUploader) Upload(_ context.Context, name, _ string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.names = append(u.names, name)
	u.data = append(u.data, b)
	return "/uploads/" + name, nil
}

type fakeGen struct {
	name    string
	out     string
	err     error
	prompts []string
	delay   time.Duration
}

func (g *fakeGen) Name() string { return g.name }

func (g *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.out, g.err
}

type fakeResultRepo struct {
	rows []*models.InterviewResult
	err  error
}

func (r *fakeResultRepo) Insert(_ context.Context, row *models.InterviewResult) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, row)
	return nil
}

func (r *fakeResultRepo) ListRecent(_ context.Context, limit int) ([]models.InterviewResult, error) {
	var out []models.InterviewResult
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.rows[i])
	}
	return out, nil
}

type fakeResponder struct {
	reply string
	ok    bool
	reqs  []ResponseRequest
}

func (f *fakeResponder) Respond(_ context.Context, req ResponseRequest) (string, bool) {
	f.reqs = append(f.reqs, req)
	return f.reply, f.ok
}
