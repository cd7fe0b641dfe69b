// file: internals/features/assessments/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	asgDTO "kelasku_backend/internals/features/assessments/assignments/dto"
	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	"kelasku_backend/internals/policy"
)

// Service mengelola lifecycle assignment: create (validasi penuh, tanpa
// partial write), update field mutable, dan pembacaan.
type Service struct {
	DB     *gorm.DB
	Policy policy.Policy
}

func NewService(db *gorm.DB, pol policy.Policy) *Service {
	if pol == nil {
		pol = policy.CreatorOnly{}
	}
	return &Service{DB: db, Policy: pol}
}

func (s *Service) Create(ctx context.Context, req asgDTO.CreateAssignmentRequest, createdBy uuid.UUID) (*asgModel.AssignmentModel, error) {
	// aturan kondisional: contentType=text wajib punya content
	if req.AssignmentContentType == string(asgModel.AssignmentContentTypeText) {
		if req.AssignmentContent == nil || strings.TrimSpace(*req.AssignmentContent) == "" {
			return nil, apperr.Validation("Content is required when contentType is text")
		}
	}

	m := req.ToModel(createdBy)
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*asgModel.AssignmentModel, error) {
	var m asgModel.AssignmentModel
	if err := s.DB.WithContext(ctx).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]asgModel.AssignmentModel, error) {
	var list []asgModel.AssignmentModel
	if err := s.DB.WithContext(ctx).
		Where("assignment_classroom_id = ?", classroomID).
		Order("assignment_created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update: hanya title/description/due date; field lain immutable lewat path ini.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req asgDTO.UpdateAssignmentRequest, caller uuid.UUID) (*asgModel.AssignmentModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Policy.Can(policy.ActionUpdateAssignment, m.AssignmentCreatedBy, caller) {
		return nil, apperr.Forbidden("Not authorized to update this assignment")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return m, nil
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// MarkEvaluated: transisi is_evaluated false→true setelah batch run selesai.
func (s *Service) MarkEvaluated(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Model(&asgModel.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Update("assignment_is_evaluated", true).Error
}
