// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultPhotoURL = "https://ui-avatars.com/api/?background=random"

// UserModel merepresentasikan tabel users di database.
// Password nullable — akun Google-only tidak punya password lokal.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;uniqueIndex:uq_users_email;not null" json:"user_email"`
	UserPhotoURL string    `gorm:"column:user_photo_url;type:text;not null" json:"user_photo_url"`
	UserPassword *string   `gorm:"column:user_password;size:255" json:"-"`
	UserGoogleID *string   `gorm:"column:user_google_id;size:255" json:"-"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	if u.UserPhotoURL == "" {
		u.UserPhotoURL = DefaultPhotoURL
	}
	return nil
}
