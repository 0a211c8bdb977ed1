package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// InterviewResult is an archived results report. Live sessions are never
// written here, only the report produced when a session is consumed.
type InterviewResult struct {
	ID          string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionID   string         `gorm:"column:session_id;type:text;uniqueIndex" json:"session_id"`
	Kind        string         `gorm:"column:kind;type:text;index" json:"kind"` // basic|real
	Track       string         `gorm:"column:track;type:text" json:"track"`
	Tech        string         `gorm:"column:tech;type:text" json:"tech,omitempty"`
	Score       int            `gorm:"column:score;type:integer" json:"score"`
	Strengths   pq.StringArray `gorm:"column:strengths;type:text[]" json:"strengths"`
	Report      datatypes.JSON `gorm:"column:report;type:jsonb" json:"report"`
	StartedAt   time.Time      `gorm:"column:started_at;type:timestamptz" json:"started_at"`
	CompletedAt time.Time      `gorm:"column:completed_at;type:timestamptz;index" json:"completed_at"`
}

func (InterviewResult) TableName() string { return "interview_results" }
