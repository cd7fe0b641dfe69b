// file: internals/features/classroom/classrooms/dto/classroom_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	clsModel "kelasku_backend/internals/features/classroom/classrooms/model"
)

// =========================================================
// REQUEST DTO
// =========================================================

type CreateClassroomRequest struct {
	ClassroomName        string  `json:"classroom_name" validate:"required,max=120"`
	ClassroomDescription string  `json:"classroom_description"`
	ClassroomImageURL    *string `json:"classroom_image_url" validate:"omitempty,url"`
}

func (r *CreateClassroomRequest) ToModel(adminID uuid.UUID) clsModel.ClassroomModel {
	return clsModel.ClassroomModel{
		ClassroomName:        r.ClassroomName,
		ClassroomDescription: r.ClassroomDescription,
		ClassroomImageURL:    r.ClassroomImageURL,
		ClassroomAdminID:     adminID,
	}
}

type JoinClassroomRequest struct {
	ClassroomJoinCode string `json:"classroom_join_code" validate:"required"`
}

type UpdateClassroomRequest struct {
	ClassroomName        *string `json:"classroom_name" validate:"omitempty,max=120"`
	ClassroomDescription *string `json:"classroom_description"`
	ClassroomImageURL    *string `json:"classroom_image_url" validate:"omitempty,url"`
}

func (r *UpdateClassroomRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.ClassroomName != nil {
		updates["classroom_name"] = *r.ClassroomName
	}
	if r.ClassroomDescription != nil {
		updates["classroom_description"] = *r.ClassroomDescription
	}
	if r.ClassroomImageURL != nil {
		updates["classroom_image_url"] = *r.ClassroomImageURL
	}
	return updates
}

// Target user untuk operasi keanggotaan (promote/demote/remove).
type MembershipRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// =========================================================
// RESPONSE DTO
// =========================================================

type ClassroomResponse struct {
	ClassroomID          uuid.UUID `json:"classroom_id"`
	ClassroomName        string    `json:"classroom_name"`
	ClassroomDescription string    `json:"classroom_description"`
	ClassroomImageURL    *string   `json:"classroom_image_url,omitempty"`

	ClassroomAdminID         uuid.UUID `json:"classroom_admin_id"`
	ClassroomSecondaryAdmins []string  `json:"classroom_secondary_admins"`
	ClassroomStudents        []string  `json:"classroom_students"`
	ClassroomJoinCode        string    `json:"classroom_join_code"`

	ClassroomCreatedAt time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `json:"classroom_updated_at"`
}

func FromModel(m *clsModel.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:              m.ClassroomID,
		ClassroomName:            m.ClassroomName,
		ClassroomDescription:     m.ClassroomDescription,
		ClassroomImageURL:        m.ClassroomImageURL,
		ClassroomAdminID:         m.ClassroomAdminID,
		ClassroomSecondaryAdmins: append([]string{}, m.ClassroomSecondaryAdmins...),
		ClassroomStudents:        append([]string{}, m.ClassroomStudents...),
		ClassroomJoinCode:        m.ClassroomJoinCode,
		ClassroomCreatedAt:       m.ClassroomCreatedAt,
		ClassroomUpdatedAt:       m.ClassroomUpdatedAt,
	}
}

func FromModels(list []clsModel.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
