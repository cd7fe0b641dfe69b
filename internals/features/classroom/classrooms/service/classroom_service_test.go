// file: internals/features/classroom/classrooms/service/classroom_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kelasku_backend/internals/apperr"
	clsDTO "kelasku_backend/internals/features/classroom/classrooms/dto"
	clsModel "kelasku_backend/internals/features/classroom/classrooms/model"
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

	require.NoError(t, db.AutoMigrate(&clsModel.ClassroomModel{}))
	return db
}

func seedClassroom(t *testing.T, svc *Service, adminID uuid.UUID) *clsModel.ClassroomModel {
	t.Helper()
	cls, err := svc.Create(context.Background(), clsDTO.CreateClassroomRequest{
		ClassroomName:        "Pemrograman Lanjut",
		ClassroomDescription: "Kelas semester genap",
	}, adminID)
	require.NoError(t, err)
	return cls
}

func TestCreate_GeneratesJoinCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	cls := seedClassroom(t, svc, uuid.New())
	assert.True(t, strings.HasPrefix(cls.ClassroomJoinCode, "classroom-"))

	other := seedClassroom(t, svc, uuid.New())
	assert.NotEqual(t, cls.ClassroomJoinCode, other.ClassroomJoinCode)
}

func TestJoinByCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	admin := uuid.New()
	cls := seedClassroom(t, svc, admin)

	student := uuid.New()
	joined, err := svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, student)
	require.NoError(t, err)
	assert.True(t, joined.IsStudent(student))

	// sudah member → ditolak
	_, err = svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, student)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrAlreadyMember))

	// admin utama juga dihitung member
	_, err = svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrAlreadyMember))

	// kode tidak dikenal
	_, err = svc.JoinByCode(context.Background(), "classroom-tidak-ada", uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLeave(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	admin := uuid.New()
	cls := seedClassroom(t, svc, admin)

	student := uuid.New()
	_, err := svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, student)
	require.NoError(t, err)

	// admin utama tidak boleh leave
	err = svc.Leave(context.Background(), cls.ClassroomID, admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	// student boleh
	require.NoError(t, svc.Leave(context.Background(), cls.ClassroomID, student))
	got, err := svc.GetByID(context.Background(), cls.ClassroomID)
	require.NoError(t, err)
	assert.False(t, got.IsStudent(student))

	// bukan member → validation error
	err = svc.Leave(context.Background(), cls.ClassroomID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestPromoteDemote_MovesBetweenSets(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	admin := uuid.New()
	cls := seedClassroom(t, svc, admin)

	student := uuid.New()
	_, err := svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, student)
	require.NoError(t, err)

	// bukan admin utama → ditolak
	_, err = svc.Promote(context.Background(), cls.ClassroomID, student, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	// promote: keluar dari students, masuk ke secondary admins
	promoted, err := svc.Promote(context.Background(), cls.ClassroomID, student, admin)
	require.NoError(t, err)
	assert.False(t, promoted.IsStudent(student))
	assert.True(t, promoted.IsSecondaryAdmin(student))

	// promote lagi → bukan student lagi, validation error
	_, err = svc.Promote(context.Background(), cls.ClassroomID, student, admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	// demote: balik jadi student
	demoted, err := svc.Demote(context.Background(), cls.ClassroomID, student, admin)
	require.NoError(t, err)
	assert.True(t, demoted.IsStudent(student))
	assert.False(t, demoted.IsSecondaryAdmin(student))
}

func TestRemoveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	admin := uuid.New()
	cls := seedClassroom(t, svc, admin)

	student := uuid.New()
	_, err := svc.JoinByCode(context.Background(), cls.ClassroomJoinCode, student)
	require.NoError(t, err)

	// bukan admin utama → ditolak
	err = svc.RemoveUser(context.Background(), cls.ClassroomID, student, student)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	// admin tidak bisa mengeluarkan dirinya sendiri
	err = svc.RemoveUser(context.Background(), cls.ClassroomID, admin, admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	require.NoError(t, svc.RemoveUser(context.Background(), cls.ClassroomID, student, admin))
	got, err := svc.GetByID(context.Background(), cls.ClassroomID)
	require.NoError(t, err)
	assert.False(t, got.IsMember(student))
}

func TestUpdateAndDelete_MainAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	admin := uuid.New()
	cls := seedClassroom(t, svc, admin)

	newName := "Pemrograman Lanjut A"
	_, err := svc.Update(context.Background(), cls.ClassroomID, clsDTO.UpdateClassroomRequest{
		ClassroomName: &newName,
	}, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	updated, err := svc.Update(context.Background(), cls.ClassroomID, clsDTO.UpdateClassroomRequest{
		ClassroomName: &newName,
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, newName, updated.ClassroomName)
	assert.Equal(t, cls.ClassroomDescription, updated.ClassroomDescription)

	err = svc.Delete(context.Background(), cls.ClassroomID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotAuthorized))

	require.NoError(t, svc.Delete(context.Background(), cls.ClassroomID, admin))
	_, err = svc.GetByID(context.Background(), cls.ClassroomID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
