// file: internals/features/classroom/attendance/controller/attendance_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attModel "kelasku_backend/internals/features/classroom/attendance/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&attModel.AttendanceModel{}))

	app := fiber.New()
	// stub auth: langsung set user_id seperti yang dilakukan AuthMiddleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New())
		return c.Next()
	})

	ctrl := NewAttendanceController(db)
	app.Post("/api/attendance/mark", ctrl.Mark)
	app.Get("/api/attendance/date/:date", ctrl.GetByDate)
	app.Get("/api/attendance/summary/:month", ctrl.MonthlySummary)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestMark_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	// status di luar enum
	resp, body := doJSON(t, app, http.MethodPost, "/api/attendance/mark", map[string]any{
		"attendance_date":       "2026-03-02",
		"attendance_student_id": uuid.New().String(),
		"attendance_status":     "Late",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	// format tanggal salah
	resp, _ = doJSON(t, app, http.MethodPost, "/api/attendance/mark", map[string]any{
		"attendance_date":       "02-03-2026",
		"attendance_student_id": uuid.New().String(),
		"attendance_status":     "Present",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMarkAndGetByDate(t *testing.T) {
	app, _ := newTestApp(t)
	student := uuid.New()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/attendance/mark", map[string]any{
		"attendance_date":       "2026-03-02",
		"attendance_student_id": student.String(),
		"attendance_status":     "Present",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/attendance/date/2026-03-02", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]any)
	assert.Len(t, data, 1)

	// tanggal tanpa record → 200 list kosong, bukan 404
	resp, body = doJSON(t, app, http.MethodGet, "/api/attendance/date/2026-03-03", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])
}

func TestMonthlySummary_CountsOnlyPresent(t *testing.T) {
	app, db := newTestApp(t)
	year := time.Now().Year()

	s1 := uuid.New()
	s2 := uuid.New()
	records := []attModel.AttendanceModel{
		{AttendanceDate: fmt.Sprintf("%d-03-02", year), AttendanceStudentID: s1, AttendanceStatus: attModel.AttendanceStatusPresent},
		{AttendanceDate: fmt.Sprintf("%d-03-03", year), AttendanceStudentID: s1, AttendanceStatus: attModel.AttendanceStatusPresent},
		{AttendanceDate: fmt.Sprintf("%d-03-04", year), AttendanceStudentID: s1, AttendanceStatus: attModel.AttendanceStatusAbsent},
		{AttendanceDate: fmt.Sprintf("%d-03-02", year), AttendanceStudentID: s2, AttendanceStatus: attModel.AttendanceStatusAbsent},
		// bulan lain, tidak boleh ikut
		{AttendanceDate: fmt.Sprintf("%d-04-01", year), AttendanceStudentID: s1, AttendanceStatus: attModel.AttendanceStatusPresent},
	}
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/attendance/summary/march", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, "March", data["month"])

	present := data["present_days"].(map[string]any)
	assert.EqualValues(t, 2, present[s1.String()])
	// s2 cuma Absent → tidak muncul di rekap
	_, ok := present[s2.String()]
	assert.False(t, ok)
}

func TestMonthlySummary_BadMonth(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/attendance/summary/bukanbulan", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
