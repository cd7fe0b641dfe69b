// file: internals/features/assessments/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================
// Enum: Content Type
// =========================

type AssignmentContentType string

const (
	AssignmentContentTypeText AssignmentContentType = "text"
	AssignmentContentTypePDF  AssignmentContentType = "pdf"
)

// =========================
// Model: assignments
// =========================

type AssignmentModel struct {
	AssignmentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentClassroomID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_classroom_id" json:"assignment_classroom_id"`

	AssignmentTitle       string `gorm:"type:varchar(180);not null;column:assignment_title" json:"assignment_title"`
	AssignmentDescription string `gorm:"type:text;not null;column:assignment_description" json:"assignment_description"`

	// Materi: teks bebas ATAU PDF, dibedakan lewat content_type
	AssignmentContent       *string               `gorm:"type:text;column:assignment_content" json:"assignment_content,omitempty"`
	AssignmentContentPDFURL *string               `gorm:"type:varchar(255);column:assignment_content_pdf_url" json:"assignment_content_pdf_url,omitempty"`
	AssignmentContentType   AssignmentContentType `gorm:"type:varchar(8);not null;default:'pdf';column:assignment_content_type" json:"assignment_content_type"`

	// Referensi utama untuk rubrik penilaian
	AssignmentPrimaryPDFURL string `gorm:"type:varchar(255);not null;column:assignment_primary_pdf_url" json:"assignment_primary_pdf_url"`

	AssignmentCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:assignment_created_by" json:"assignment_created_by"`
	AssignmentDueDate   time.Time `gorm:"not null;column:assignment_due_date" json:"assignment_due_date"`

	// true hanya setelah satu run evaluate-all selesai
	AssignmentIsEvaluated bool `gorm:"not null;default:false;column:assignment_is_evaluated" json:"assignment_is_evaluated"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}
