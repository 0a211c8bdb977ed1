package services

import (
	"bytes"
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ignitai/ignitai-backend/internal/cache"
	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/repositories/mongo"
	"github.com/ignitai/ignitai-backend/internal/storage"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

const (
	feedbackCompany   = "IgnitAI"
	defaultRating     = 5
	feedbackCacheTTL  = 5 * time.Minute
	feedbackListLimit = 0 // no limit
)

type FeedbackInput struct {
	Name     string
	Role     string
	Quote    string
	Badges   []string // repeated form fields, or a single comma separated value
	Rating   string
	LinkedIn string
	Image    *UploadedFile
}

type FeedbackService interface {
	Create(ctx context.Context, in FeedbackInput) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackService struct {
	repo     mongo.FeedbackRepository
	uploader storage.Uploader
	cache    cache.Cache
	now      func() time.Time
}

func NewFeedbackService(repo mongo.FeedbackRepository, uploader storage.Uploader, c cache.Cache) FeedbackService {
	if c == nil {
		c = cache.Nop{}
	}
	return &feedbackService{repo: repo, uploader: uploader, cache: c, now: time.Now}
}

func (s *feedbackService) Create(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	const op = "FeedbackService.Create"

	name := strings.TrimSpace(in.Name)
	role := strings.TrimSpace(in.Role)
	quote := strings.TrimSpace(in.Quote)
	if name == "" || role == "" || quote == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Name, role, and quote are required.", nil)
	}

	now := s.now()
	f := &models.Feedback{
		Name:      titleCase(name),
		Role:      titleCase(role),
		Company:   feedbackCompany,
		Quote:     quote,
		Badges:    parseBadges(in.Badges),
		Rating:    parseRating(in.Rating),
		LinkedIn:  strings.TrimSpace(in.LinkedIn),
		CreatedAt: now.UTC(),
	}

	if in.Image != nil {
		path, err := s.uploader.Upload(ctx, storage.ObjectName(now, in.Image.Filename), in.Image.ContentType, bytes.NewReader(in.Image.Content))
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "Failed to submit feedback.", err)
		}
		f.Image = path
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to submit feedback.", err)
	}
	_ = s.cache.Del(ctx, cache.FeedbackListKey)
	return f, nil
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	const op = "FeedbackService.List"

	var cached []models.Feedback
	if hit, err := s.cache.GetJSON(ctx, cache.FeedbackListKey, &cached); err == nil && hit {
		return cached, nil
	}

	list, err := s.repo.ListNewestFirst(ctx, feedbackListLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch feedback.", err)
	}
	if list == nil {
		list = []models.Feedback{}
	}
	_ = s.cache.SetJSON(ctx, cache.FeedbackListKey, list, feedbackCacheTTL)
	return list, nil
}

var wordPattern = regexp.MustCompile(`\w\S*`)

// titleCase upper-cases the first letter of every word and lower-cases the
// rest.
func titleCase(s string) string {
	return wordPattern.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}

func parseBadges(raw []string) []string {
	parts := raw
	if len(raw) == 1 {
		parts = strings.Split(raw[0], ",")
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseRating(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v == 0 {
		return defaultRating
	}
	return int(math.Round(v))
}
