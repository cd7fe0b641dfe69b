// file: internals/features/assessments/submissions/controller/submission_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
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

	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	subModel "kelasku_backend/internals/features/assessments/submissions/model"
)

func newTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&asgModel.AssignmentModel{}, &subModel.SubmissionModel{}))

	app := fiber.New()
	// stub auth: set user_id seperti AuthMiddleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})

	ctrl := NewSubmissionController(db)
	app.Post("/api/submissions/create", ctrl.Create)
	app.Get("/api/submissions/:id", ctrl.GetByID)
	app.Put("/api/submissions/grade/:submissionId", ctrl.Grade)

	return app, db
}

func seedAssignment(t *testing.T, db *gorm.DB, createdBy uuid.UUID, due time.Time) *asgModel.AssignmentModel {
	t.Helper()
	asg := &asgModel.AssignmentModel{
		AssignmentClassroomID:   uuid.New(),
		AssignmentTitle:         "Tugas Sistem Operasi",
		AssignmentDescription:   "Penjadwalan proses",
		AssignmentContentType:   asgModel.AssignmentContentTypePDF,
		AssignmentPrimaryPDFURL: "https://files.example.com/soal.pdf",
		AssignmentCreatedBy:     createdBy,
		AssignmentDueDate:       due,
	}
	require.NoError(t, db.Create(asg).Error)
	return asg
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

func TestCreateSubmission_EnvelopeAndStatusMapping(t *testing.T) {
	student := uuid.New()
	app, db := newTestApp(t, student)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(time.Hour))

	payload := map[string]any{
		"submission_assignment_id": asg.AssignmentID.String(),
		"submission_pdf_url":       "https://files.example.com/jawaban.pdf",
	}

	// sukses → 201, envelope {success,message,data}
	resp, body := doJSON(t, app, http.MethodPost, "/api/submissions/create", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, student.String(), data["submission_student_id"])

	// duplikat → 409 CONFLICT
	resp, body = doJSON(t, app, http.MethodPost, "/api/submissions/create", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CONFLICT", body["error_code"])

	// assignment tidak ada → 404
	resp, _ = doJSON(t, app, http.MethodPost, "/api/submissions/create", map[string]any{
		"submission_assignment_id": uuid.New().String(),
		"submission_pdf_url":       "https://files.example.com/jawaban.pdf",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateSubmission_DeadlinePassed(t *testing.T) {
	student := uuid.New()
	app, db := newTestApp(t, student)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(-time.Minute))

	resp, body := doJSON(t, app, http.MethodPost, "/api/submissions/create", map[string]any{
		"submission_assignment_id": asg.AssignmentID.String(),
		"submission_pdf_url":       "https://files.example.com/jawaban.pdf",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestCreateSubmission_ValidationError(t *testing.T) {
	app, _ := newTestApp(t, uuid.New())

	resp, body := doJSON(t, app, http.MethodPost, "/api/submissions/create", map[string]any{
		"submission_pdf_url": "bukan-url",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	assert.NotNil(t, body["errors"])
}

func TestGrade_ForbiddenForNonCreator(t *testing.T) {
	caller := uuid.New()
	app, db := newTestApp(t, caller)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(time.Hour))

	sub := subModel.SubmissionModel{
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionStudentID:    uuid.New(),
		SubmissionPDFURL:       "https://files.example.com/j.pdf",
	}
	require.NoError(t, db.Create(&sub).Error)

	resp, body := doJSON(t, app, http.MethodPut, "/api/submissions/grade/"+sub.SubmissionID.String(), map[string]any{
		"submission_score":    88,
		"submission_feedback": "Cukup baik",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["error_code"])
}

func TestGrade_OKForCreator(t *testing.T) {
	creator := uuid.New()
	app, db := newTestApp(t, creator)
	asg := seedAssignment(t, db, creator, time.Now().Add(time.Hour))

	sub := subModel.SubmissionModel{
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionStudentID:    uuid.New(),
		SubmissionPDFURL:       "https://files.example.com/j.pdf",
	}
	require.NoError(t, db.Create(&sub).Error)

	resp, body := doJSON(t, app, http.MethodPut, "/api/submissions/grade/"+sub.SubmissionID.String(), map[string]any{
		"submission_score":    88,
		"submission_feedback": "Cukup baik",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 88, data["submission_score"])
}
