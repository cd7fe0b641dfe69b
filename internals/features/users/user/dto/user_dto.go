// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "kelasku_backend/internals/features/users/user/model"
)

type AddUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPhotoURL string `json:"user_photo_url" validate:"omitempty,url"`
}

func (r *AddUserRequest) ToModel() userModel.UserModel {
	return userModel.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPhotoURL: r.UserPhotoURL,
	}
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserPhotoURL string    `json:"user_photo_url"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromModel(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserPhotoURL:  m.UserPhotoURL,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func FromModels(list []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
