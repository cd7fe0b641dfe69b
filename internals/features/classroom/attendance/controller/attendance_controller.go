// file: internals/features/classroom/attendance/controller/attendance_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "kelasku_backend/internals/features/classroom/attendance/model"
	helper "kelasku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

type markAttendanceRequest struct {
	AttendanceDate      string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=Present Absent"`
}

// 📌 POST /api/attendance/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	rec := attModel.AttendanceModel{
		AttendanceDate:      req.AttendanceDate,
		AttendanceStudentID: req.AttendanceStudentID,
		AttendanceStatus:    attModel.AttendanceStatus(req.AttendanceStatus),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}

	return helper.JsonCreated(c, "Kehadiran tercatat", rec)
}

// 📌 GET /api/attendance/date/:date
// Tanggal tanpa record tetap 200 dengan list kosong, bukan 404.
func (ctrl *AttendanceController) GetByDate(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	list := []attModel.AttendanceModel{}
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_date = ?", date).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	return helper.JsonOK(c, "OK", list)
}

// 📌 GET /api/attendance/summary/:month
// Rekap bulan bernama (January..December) di tahun berjalan: jumlah hari
// Present per student. Absent tidak dihitung.
func (ctrl *AttendanceController) MonthlySummary(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	monthNum, ok := monthNumber(c.Params("month"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama bulan tidak valid")
	}

	prefix := fmt.Sprintf("%04d-%02d", time.Now().Year(), monthNum)

	var records []attModel.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_date LIKE ?", prefix+"%").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	summary := map[string]int{}
	for _, r := range records {
		if r.AttendanceStatus == attModel.AttendanceStatusPresent {
			summary[r.AttendanceStudentID.String()]++
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"month":        time.Month(monthNum).String(),
		"year":         time.Now().Year(),
		"present_days": summary,
	})
}

func monthNumber(name string) (int, bool) {
	months := map[string]int{
		"january": 1, "february": 2, "march": 3, "april": 4,
		"may": 5, "june": 6, "july": 7, "august": 8,
		"september": 9, "october": 10, "november": 11, "december": 12,
	}
	n, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}
