package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ignitai/ignitai-backend/internal/interview"
	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/repositories/postgres"
	"github.com/ignitai/ignitai-backend/internal/utils"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	defaultResultsLimit = 50
	maxResultsLimit     = 500
)

// ResultArchive keeps completed interview reports. Live sessions never touch
// it.
type ResultArchive interface {
	Record(ctx context.Context, s *interview.Session, score int, strengths []string, report any) error
	ListRecent(ctx context.Context, limit int) ([]models.InterviewResult, error)
	Enabled() bool
}

type resultArchive struct {
	repo postgres.InterviewResultRepository
	now  func() time.Time
}

// NewResultArchive returns a disabled archive when repo is nil.
func NewResultArchive(repo postgres.InterviewResultRepository) ResultArchive {
	return &resultArchive{repo: repo, now: time.Now}
}

func (a *resultArchive) Enabled() bool { return a.repo != nil }

func (a *resultArchive) Record(ctx context.Context, s *interview.Session, score int, strengths []string, report any) error {
	const op = "ResultArchive.Record"
	if a.repo == nil {
		return nil
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to encode report", err)
	}
	row := &models.InterviewResult{
		ID:          uuid.NewString(),
		SessionID:   s.ID,
		Kind:        string(s.Kind),
		Track:       s.Track,
		Tech:        s.Tech,
		Score:       score,
		Strengths:   pq.StringArray(strengths),
		Report:      datatypes.JSON(raw),
		StartedAt:   s.StartedAt,
		CompletedAt: a.now(),
	}
	if err := a.repo.Insert(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to archive result", err)
	}
	return nil
}

func (a *resultArchive) ListRecent(ctx context.Context, limit int) ([]models.InterviewResult, error) {
	const op = "ResultArchive.ListRecent"
	if a.repo == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "Interview result archive is not configured.", nil)
	}
	if limit <= 0 {
		limit = defaultResultsLimit
	}
	if limit > maxResultsLimit {
		limit = maxResultsLimit
	}

	rows, err := a.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to load interview results.", err)
	}
	return rows, nil
}
