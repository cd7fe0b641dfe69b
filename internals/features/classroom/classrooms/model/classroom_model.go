// file: internals/features/classroom/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClassroomModel: satu kelas dengan satu admin utama, daftar admin sekunder,
// dan daftar student. Keanggotaan disimpan sebagai array uuid (text[]) —
// seorang user ada di paling banyak satu dari tiga peran itu per kelas.
type ClassroomModel struct {
	ClassroomID          uuid.UUID `gorm:"column:classroom_id;type:uuid;primaryKey" json:"classroom_id"`
	ClassroomName        string    `gorm:"column:classroom_name;type:varchar(120);not null" json:"classroom_name"`
	ClassroomDescription string    `gorm:"column:classroom_description;type:text" json:"classroom_description"`
	ClassroomImageURL    *string   `gorm:"column:classroom_image_url;type:text" json:"classroom_image_url,omitempty"`

	ClassroomAdminID         uuid.UUID      `gorm:"column:classroom_admin_id;type:uuid;not null" json:"classroom_admin_id"`
	ClassroomSecondaryAdmins pq.StringArray `gorm:"column:classroom_secondary_admins;type:text[]" json:"classroom_secondary_admins"`
	ClassroomStudents        pq.StringArray `gorm:"column:classroom_students;type:text[]" json:"classroom_students"`

	ClassroomJoinCode string `gorm:"column:classroom_join_code;type:varchar(50);uniqueIndex:uq_classrooms_join_code;not null" json:"classroom_join_code"`

	ClassroomCreatedAt time.Time `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	if m.ClassroomJoinCode == "" {
		m.ClassroomJoinCode = "classroom-" + uuid.NewString()
	}
	return nil
}

// IsMainAdmin cek admin utama.
func (m *ClassroomModel) IsMainAdmin(userID uuid.UUID) bool {
	return m.ClassroomAdminID == userID
}

func (m *ClassroomModel) IsSecondaryAdmin(userID uuid.UUID) bool {
	return containsID(m.ClassroomSecondaryAdmins, userID)
}

func (m *ClassroomModel) IsStudent(userID uuid.UUID) bool {
	return containsID(m.ClassroomStudents, userID)
}

// IsMember: admin utama, admin sekunder, atau student.
func (m *ClassroomModel) IsMember(userID uuid.UUID) bool {
	return m.IsMainAdmin(userID) || m.IsSecondaryAdmin(userID) || m.IsStudent(userID)
}

func containsID(arr pq.StringArray, id uuid.UUID) bool {
	s := id.String()
	for _, v := range arr {
		if v == s {
			return true
		}
	}
	return false
}

// RemoveID menghapus satu uuid dari array, no-op kalau tidak ada.
func RemoveID(arr pq.StringArray, id uuid.UUID) pq.StringArray {
	s := id.String()
	out := make(pq.StringArray, 0, len(arr))
	for _, v := range arr {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
