// file: internals/features/classroom/classrooms/service/classroom_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	clsDTO "kelasku_backend/internals/features/classroom/classrooms/dto"
	clsModel "kelasku_backend/internals/features/classroom/classrooms/model"
)

// Service mengelola lifecycle classroom dan mutasi keanggotaan. Semua mutasi
// keanggotaan mensyaratkan peran: admin utama untuk promote/demote/remove/
// update/delete, member biasa untuk leave.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) Create(ctx context.Context, req clsDTO.CreateClassroomRequest, adminID uuid.UUID) (*clsModel.ClassroomModel, error) {
	m := req.ToModel(adminID)
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*clsModel.ClassroomModel, error) {
	var m clsModel.ClassroomModel
	if err := s.DB.WithContext(ctx).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Classroom")
		}
		return nil, err
	}
	return &m, nil
}

// JoinByCode menambahkan user sebagai student lewat join code.
// User yang sudah member (peran apapun) ditolak.
func (s *Service) JoinByCode(ctx context.Context, joinCode string, userID uuid.UUID) (*clsModel.ClassroomModel, error) {
	var m clsModel.ClassroomModel
	if err := s.DB.WithContext(ctx).
		First(&m, "classroom_join_code = ?", joinCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Classroom")
		}
		return nil, err
	}

	if m.IsMember(userID) {
		return nil, apperr.ErrAlreadyMember
	}

	m.ClassroomStudents = append(m.ClassroomStudents, userID.String())
	if err := s.DB.WithContext(ctx).Model(&m).
		Update("classroom_students", m.ClassroomStudents).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Leave mengeluarkan user dari kelas. Admin utama tidak boleh leave —
// dia harus menghapus kelas atau tetap di dalamnya.
func (s *Service) Leave(ctx context.Context, classroomID, userID uuid.UUID) error {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}

	if m.IsMainAdmin(userID) {
		return apperr.Forbidden("Admin utama tidak bisa keluar dari kelasnya sendiri")
	}
	if !m.IsMember(userID) {
		return apperr.Validation("User bukan anggota kelas ini")
	}

	return s.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"classroom_students":         clsModel.RemoveID(m.ClassroomStudents, userID),
		"classroom_secondary_admins": clsModel.RemoveID(m.ClassroomSecondaryAdmins, userID),
	}).Error
}

// Promote memindahkan student jadi admin sekunder. Hanya admin utama.
func (s *Service) Promote(ctx context.Context, classroomID, targetID, caller uuid.UUID) (*clsModel.ClassroomModel, error) {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !m.IsMainAdmin(caller) {
		return nil, apperr.Forbidden("Hanya admin utama yang bisa promote")
	}
	if !m.IsStudent(targetID) {
		return nil, apperr.Validation("User bukan student di kelas ini")
	}

	m.ClassroomStudents = clsModel.RemoveID(m.ClassroomStudents, targetID)
	m.ClassroomSecondaryAdmins = append(m.ClassroomSecondaryAdmins, targetID.String())
	if err := s.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"classroom_students":         m.ClassroomStudents,
		"classroom_secondary_admins": m.ClassroomSecondaryAdmins,
	}).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Demote memindahkan admin sekunder kembali jadi student. Hanya admin utama.
func (s *Service) Demote(ctx context.Context, classroomID, targetID, caller uuid.UUID) (*clsModel.ClassroomModel, error) {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !m.IsMainAdmin(caller) {
		return nil, apperr.Forbidden("Hanya admin utama yang bisa demote")
	}
	if !m.IsSecondaryAdmin(targetID) {
		return nil, apperr.Validation("User bukan admin sekunder di kelas ini")
	}

	m.ClassroomSecondaryAdmins = clsModel.RemoveID(m.ClassroomSecondaryAdmins, targetID)
	m.ClassroomStudents = append(m.ClassroomStudents, targetID.String())
	if err := s.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"classroom_students":         m.ClassroomStudents,
		"classroom_secondary_admins": m.ClassroomSecondaryAdmins,
	}).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// RemoveUser mengeluarkan member lain dari kelas. Hanya admin utama, dan
// tidak bisa mengeluarkan dirinya sendiri.
func (s *Service) RemoveUser(ctx context.Context, classroomID, targetID, caller uuid.UUID) error {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}
	if !m.IsMainAdmin(caller) {
		return apperr.Forbidden("Hanya admin utama yang bisa mengeluarkan user")
	}
	if targetID == caller {
		return apperr.Validation("Admin utama tidak bisa mengeluarkan dirinya sendiri")
	}
	if !m.IsMember(targetID) {
		return apperr.Validation("User bukan anggota kelas ini")
	}

	return s.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"classroom_students":         clsModel.RemoveID(m.ClassroomStudents, targetID),
		"classroom_secondary_admins": clsModel.RemoveID(m.ClassroomSecondaryAdmins, targetID),
	}).Error
}

func (s *Service) Update(ctx context.Context, classroomID uuid.UUID, req clsDTO.UpdateClassroomRequest, caller uuid.UUID) (*clsModel.ClassroomModel, error) {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !m.IsMainAdmin(caller) {
		return nil, apperr.Forbidden("Hanya admin utama yang bisa mengubah kelas")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return m, nil
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, classroomID)
}

func (s *Service) Delete(ctx context.Context, classroomID, caller uuid.UUID) error {
	m, err := s.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}
	if !m.IsMainAdmin(caller) {
		return apperr.Forbidden("Hanya admin utama yang bisa menghapus kelas")
	}
	return s.DB.WithContext(ctx).Delete(m).Error
}

// ListForUser: semua kelas di mana user jadi admin utama, admin sekunder,
// atau student. ANY() butuh Postgres, bukan path yang dites dengan sqlite.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]clsModel.ClassroomModel, error) {
	var list []clsModel.ClassroomModel
	uid := userID.String()
	if err := s.DB.WithContext(ctx).
		Where("classroom_admin_id = ? OR ? = ANY(classroom_secondary_admins) OR ? = ANY(classroom_students)",
			userID, uid, uid).
		Order("classroom_created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
