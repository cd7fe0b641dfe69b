// file: internals/features/classroom/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceModel: satu record kehadiran per (tanggal, student).
// Tanggal disimpan sebagai string YYYY-MM-DD supaya query per-hari dan
// per-bulan (prefix match) tetap sederhana.
type AttendanceModel struct {
	AttendanceID        uuid.UUID        `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceDate      string           `gorm:"column:attendance_date;type:varchar(10);not null;index:idx_attendances_date" json:"attendance_date"`
	AttendanceStudentID uuid.UUID        `gorm:"column:attendance_student_id;type:uuid;not null" json:"attendance_student_id"`
	AttendanceStatus    AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
