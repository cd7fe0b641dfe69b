// file: internals/features/assessments/submissions/service/submission_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kelasku_backend/internals/apperr"
	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	subModel "kelasku_backend/internals/features/assessments/submissions/model"
	"kelasku_backend/internals/policy"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&asgModel.AssignmentModel{}, &subModel.SubmissionModel{}))
	return db
}

func seedAssignment(t *testing.T, db *gorm.DB, createdBy uuid.UUID, due time.Time) *asgModel.AssignmentModel {
	t.Helper()
	asg := &asgModel.AssignmentModel{
		AssignmentClassroomID:   uuid.New(),
		AssignmentTitle:         "Tugas Basis Data",
		AssignmentDescription:   "Normalisasi sampai 3NF",
		AssignmentContentType:   asgModel.AssignmentContentTypePDF,
		AssignmentPrimaryPDFURL: "https://files.example.com/soal.pdf",
		AssignmentCreatedBy:     createdBy,
		AssignmentDueDate:       due,
	}
	require.NoError(t, db.Create(asg).Error)
	return asg
}

func TestSubmit_OK(t *testing.T) {
	db := newTestDB(t)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(time.Hour))
	svc := NewService(db, nil)

	student := uuid.New()
	sub, err := svc.Submit(context.Background(), asg.AssignmentID, student, "https://files.example.com/jawaban.pdf")
	require.NoError(t, err)
	assert.Equal(t, student, sub.SubmissionStudentID)
	assert.Nil(t, sub.SubmissionScore)
	assert.False(t, sub.SubmissionSubmittedAt.IsZero())
}

func TestSubmit_AssignmentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), "https://files.example.com/x.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestSubmit_DeadlinePassed(t *testing.T) {
	db := newTestDB(t)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(-time.Minute))
	svc := NewService(db, nil)

	_, err := svc.Submit(context.Background(), asg.AssignmentID, uuid.New(), "https://files.example.com/x.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrDeadlinePassed))
}

func TestSubmit_DuplicateRejectedByStore(t *testing.T) {
	db := newTestDB(t)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(time.Hour))
	svc := NewService(db, nil)

	student := uuid.New()
	_, err := svc.Submit(context.Background(), asg.AssignmentID, student, "https://files.example.com/1.pdf")
	require.NoError(t, err)

	// submission kedua untuk pasangan (assignment, student) yang sama
	_, err = svc.Submit(context.Background(), asg.AssignmentID, student, "https://files.example.com/2.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrDuplicateSubmission))

	// student lain tetap boleh
	_, err = svc.Submit(context.Background(), asg.AssignmentID, uuid.New(), "https://files.example.com/3.pdf")
	assert.NoError(t, err)
}

func TestGrade_CreatorOnly(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	asg := seedAssignment(t, db, owner, time.Now().Add(time.Hour))
	svc := NewService(db, policy.CreatorOnly{})

	sub, err := svc.Submit(context.Background(), asg.AssignmentID, uuid.New(), "https://files.example.com/j.pdf")
	require.NoError(t, err)

	// bukan pembuat assignment → ditolak
	_, err = svc.Grade(context.Background(), sub.SubmissionID, 90, "Bagus", uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	// pembuat → sukses, nilai tersimpan
	graded, err := svc.Grade(context.Background(), sub.SubmissionID, 90, "Bagus", owner)
	require.NoError(t, err)
	require.NotNil(t, graded.SubmissionScore)
	assert.Equal(t, 90, *graded.SubmissionScore)
	require.NotNil(t, graded.SubmissionFeedback)
	assert.Equal(t, "Bagus", *graded.SubmissionFeedback)
}

func TestListByAssignment_CreatorOnlyAndOrdered(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	asg := seedAssignment(t, db, owner, time.Now().Add(time.Hour))
	svc := NewService(db, policy.CreatorOnly{})

	first := subModel.SubmissionModel{
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionStudentID:    uuid.New(),
		SubmissionPDFURL:       "https://files.example.com/a.pdf",
		SubmissionSubmittedAt:  time.Now().Add(-2 * time.Hour),
	}
	second := subModel.SubmissionModel{
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionStudentID:    uuid.New(),
		SubmissionPDFURL:       "https://files.example.com/b.pdf",
		SubmissionSubmittedAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)

	_, err := svc.ListByAssignment(context.Background(), asg.AssignmentID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	list, err := svc.ListByAssignment(context.Background(), asg.AssignmentID, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// urut naik berdasarkan waktu submit
	assert.Equal(t, first.SubmissionID, list[0].SubmissionID)
	assert.Equal(t, second.SubmissionID, list[1].SubmissionID)
}

func TestGetStudentSubmission(t *testing.T) {
	db := newTestDB(t)
	asg := seedAssignment(t, db, uuid.New(), time.Now().Add(time.Hour))
	svc := NewService(db, nil)

	student := uuid.New()
	created, err := svc.Submit(context.Background(), asg.AssignmentID, student, "https://files.example.com/j.pdf")
	require.NoError(t, err)

	got, err := svc.GetStudentSubmission(context.Background(), asg.AssignmentID, student)
	require.NoError(t, err)
	assert.Equal(t, created.SubmissionID, got.SubmissionID)

	_, err = svc.GetStudentSubmission(context.Background(), asg.AssignmentID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
