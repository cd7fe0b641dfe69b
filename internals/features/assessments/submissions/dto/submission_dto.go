// file: internals/features/assessments/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	subModel "kelasku_backend/internals/features/assessments/submissions/model"
)

// =========================================================
// CREATE DTO
// =========================================================

type CreateSubmissionRequest struct {
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" validate:"required"`
	SubmissionPDFURL       string    `json:"submission_pdf_url" validate:"required,url"`
}

// =========================================================
// GRADE DTO (manual override, bypass engine)
// =========================================================

type GradeSubmissionRequest struct {
	SubmissionScore    int    `json:"submission_score" validate:"min=0,max=100"`
	SubmissionFeedback string `json:"submission_feedback" validate:"required"`
}

// =========================================================
// RESPONSE DTO
// =========================================================

type SubmissionResponse struct {
	SubmissionID           uuid.UUID `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `json:"submission_student_id"`

	SubmissionPDFURL   string         `json:"submission_pdf_url"`
	SubmissionScore    *int           `json:"submission_score,omitempty"`
	SubmissionFeedback *string        `json:"submission_feedback,omitempty"`
	SubmissionScores   map[string]any `json:"submission_scores,omitempty"`

	SubmissionSubmittedAt time.Time `json:"submission_submitted_at"`
}

func FromModel(m *subModel.SubmissionModel) SubmissionResponse {
	var scores map[string]any
	if m.SubmissionScores != nil {
		scores = map[string]any(m.SubmissionScores)
	}
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionStudentID:    m.SubmissionStudentID,
		SubmissionPDFURL:       m.SubmissionPDFURL,
		SubmissionScore:        m.SubmissionScore,
		SubmissionFeedback:     m.SubmissionFeedback,
		SubmissionScores:       scores,
		SubmissionSubmittedAt:  m.SubmissionSubmittedAt,
	}
}

func FromModels(list []subModel.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
