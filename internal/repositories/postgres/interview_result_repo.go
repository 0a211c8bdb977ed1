package postgres

import (
	"context"

	"github.com/ignitai/ignitai-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterviewResultRepository interface {
	Insert(ctx context.Context, r *models.InterviewResult) error
	ListRecent(ctx context.Context, limit int) ([]models.InterviewResult, error)
}

type interviewResultRepo struct {
	db *gorm.DB
}

func NewInterviewResultRepo(db *gorm.DB) InterviewResultRepository {
	return &interviewResultRepo{db: db}
}

// Insert ignores a second report for the same session.
func (r *interviewResultRepo) Insert(ctx context.Context, row *models.InterviewResult) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *interviewResultRepo) ListRecent(ctx context.Context, limit int) ([]models.InterviewResult, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.InterviewResult
	err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
