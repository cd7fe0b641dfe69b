// file: internals/features/assessments/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
)

// =========================================================
// CREATE DTO
// =========================================================

type CreateAssignmentRequest struct {
	AssignmentTitle       string `json:"assignment_title" validate:"required,max=180"`
	AssignmentDescription string `json:"assignment_description" validate:"required"`

	AssignmentContent       *string `json:"assignment_content,omitempty"`
	AssignmentContentPDFURL *string `json:"assignment_content_pdf_url,omitempty" validate:"omitempty,url"`
	AssignmentContentType   string  `json:"assignment_content_type" validate:"omitempty,oneof=text pdf"`

	AssignmentPrimaryPDFURL string    `json:"assignment_primary_pdf_url" validate:"required,url"`
	AssignmentClassroomID   uuid.UUID `json:"assignment_classroom_id" validate:"required"`
	AssignmentDueDate       time.Time `json:"assignment_due_date" validate:"required"`
}

func (r CreateAssignmentRequest) ToModel(createdBy uuid.UUID) asgModel.AssignmentModel {
	contentType := asgModel.AssignmentContentTypePDF
	if r.AssignmentContentType == string(asgModel.AssignmentContentTypeText) {
		contentType = asgModel.AssignmentContentTypeText
	}
	return asgModel.AssignmentModel{
		AssignmentTitle:         r.AssignmentTitle,
		AssignmentDescription:   r.AssignmentDescription,
		AssignmentContent:       r.AssignmentContent,
		AssignmentContentPDFURL: r.AssignmentContentPDFURL,
		AssignmentContentType:   contentType,
		AssignmentPrimaryPDFURL: r.AssignmentPrimaryPDFURL,
		AssignmentClassroomID:   r.AssignmentClassroomID,
		AssignmentDueDate:       r.AssignmentDueDate,
		AssignmentCreatedBy:     createdBy,
	}
}

// =========================================================
// UPDATE DTO — hanya title/description/due date yang mutable
// =========================================================

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string    `json:"assignment_title,omitempty" validate:"omitempty,max=180"`
	AssignmentDescription *string    `json:"assignment_description,omitempty"`
	AssignmentDueDate     *time.Time `json:"assignment_due_date,omitempty"`
}

func (r UpdateAssignmentRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.AssignmentTitle != nil {
		upd["assignment_title"] = *r.AssignmentTitle
	}
	if r.AssignmentDescription != nil {
		upd["assignment_description"] = *r.AssignmentDescription
	}
	if r.AssignmentDueDate != nil {
		upd["assignment_due_date"] = *r.AssignmentDueDate
	}
	return upd
}

// =========================================================
// RESPONSE DTO
// =========================================================

type AssignmentResponse struct {
	AssignmentID          uuid.UUID `json:"assignment_id"`
	AssignmentClassroomID uuid.UUID `json:"assignment_classroom_id"`

	AssignmentTitle       string `json:"assignment_title"`
	AssignmentDescription string `json:"assignment_description"`

	AssignmentContent       *string `json:"assignment_content,omitempty"`
	AssignmentContentPDFURL *string `json:"assignment_content_pdf_url,omitempty"`
	AssignmentContentType   string  `json:"assignment_content_type"`

	AssignmentPrimaryPDFURL string    `json:"assignment_primary_pdf_url"`
	AssignmentCreatedBy     uuid.UUID `json:"assignment_created_by"`
	AssignmentDueDate       time.Time `json:"assignment_due_date"`
	AssignmentIsEvaluated   bool      `json:"assignment_is_evaluated"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `json:"assignment_updated_at"`
}

func FromModel(m *asgModel.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:            m.AssignmentID,
		AssignmentClassroomID:   m.AssignmentClassroomID,
		AssignmentTitle:         m.AssignmentTitle,
		AssignmentDescription:   m.AssignmentDescription,
		AssignmentContent:       m.AssignmentContent,
		AssignmentContentPDFURL: m.AssignmentContentPDFURL,
		AssignmentContentType:   string(m.AssignmentContentType),
		AssignmentPrimaryPDFURL: m.AssignmentPrimaryPDFURL,
		AssignmentCreatedBy:     m.AssignmentCreatedBy,
		AssignmentDueDate:       m.AssignmentDueDate,
		AssignmentIsEvaluated:   m.AssignmentIsEvaluated,
		AssignmentCreatedAt:     m.AssignmentCreatedAt,
		AssignmentUpdatedAt:     m.AssignmentUpdatedAt,
	}
}

func FromModels(list []asgModel.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
