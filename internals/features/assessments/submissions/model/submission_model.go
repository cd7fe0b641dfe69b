// file: internals/features/assessments/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:submission_id" json:"submission_id"`

	// Satu submission per (assignment, student) — dijaga unique index di store,
	// bukan cuma cek aplikasi, supaya race antar request tetap tertolak.
	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submission_assignment_id" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submission_student_id" json:"submission_student_id"`

	SubmissionPDFURL string `gorm:"type:varchar(255);not null;column:submission_pdf_url" json:"submission_pdf_url"`

	// NULL sampai dievaluasi; setelah itu 0..100
	SubmissionScore    *int    `gorm:"column:submission_score" json:"submission_score,omitempty"`
	SubmissionFeedback *string `gorm:"type:text;column:submission_feedback" json:"submission_feedback,omitempty"`

	// Breakdown nilai per komponen rubrik (content/technical/presentation)
	SubmissionScores datatypes.JSONMap `gorm:"type:jsonb;column:submission_scores" json:"submission_scores,omitempty"`

	SubmissionSubmittedAt time.Time `gorm:"column:submission_submitted_at;not null" json:"submission_submitted_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (m *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubmissionID == uuid.Nil {
		m.SubmissionID = uuid.New()
	}
	if m.SubmissionSubmittedAt.IsZero() {
		m.SubmissionSubmittedAt = time.Now()
	}
	return nil
}
