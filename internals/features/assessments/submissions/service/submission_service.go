// file: internals/features/assessments/submissions/service/submission_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	subModel "kelasku_backend/internals/features/assessments/submissions/model"
	"kelasku_backend/internals/policy"
)

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

// Submit membuat submission baru untuk (assignment, student).
// Deadline dicek dulu, tapi keunikan tetap diserahkan ke unique index di
// store — dua request paralel untuk pasangan yang sama akan menghasilkan
// tepat satu pemenang dan satu ErrDuplicateSubmission.
func (s *Service) Submit(ctx context.Context, assignmentID, studentID uuid.UUID, pdfURL string) (*subModel.SubmissionModel, error) {
	var asg asgModel.AssignmentModel
	if err := s.DB.WithContext(ctx).
		First(&asg, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, err
	}

	if time.Now().After(asg.AssignmentDueDate) {
		return nil, apperr.ErrDeadlinePassed
	}

	sub := subModel.SubmissionModel{
		SubmissionAssignmentID: assignmentID,
		SubmissionStudentID:    studentID,
		SubmissionPDFURL:       pdfURL,
	}
	if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.ErrDuplicateSubmission
		}
		return nil, err
	}
	return &sub, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*subModel.SubmissionModel, error) {
	var m subModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&m, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Submission")
		}
		return nil, err
	}
	return &m, nil
}

// Grade: override manual oleh pembuat assignment, bypass evaluation engine.
func (s *Service) Grade(ctx context.Context, submissionID uuid.UUID, score int, feedback string, caller uuid.UUID) (*subModel.SubmissionModel, error) {
	sub, err := s.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	var asg asgModel.AssignmentModel
	if err := s.DB.WithContext(ctx).
		First(&asg, "assignment_id = ?", sub.SubmissionAssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, err
	}
	if !s.Policy.Can(policy.ActionGradeSubmission, asg.AssignmentCreatedBy, caller) {
		return nil, apperr.Forbidden("Not authorized to grade this submission")
	}

	if err := s.DB.WithContext(ctx).Model(sub).Updates(map[string]any{
		"submission_score":    score,
		"submission_feedback": feedback,
	}).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, submissionID)
}

// ListByAssignment: semua submission satu assignment, khusus pembuatnya.
func (s *Service) ListByAssignment(ctx context.Context, assignmentID, caller uuid.UUID) ([]subModel.SubmissionModel, error) {
	var asg asgModel.AssignmentModel
	if err := s.DB.WithContext(ctx).
		First(&asg, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, err
	}
	if !s.Policy.Can(policy.ActionViewSubmissions, asg.AssignmentCreatedBy, caller) {
		return nil, apperr.Forbidden("Not authorized to view submissions")
	}

	var list []subModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		Where("submission_assignment_id = ?", assignmentID).
		Order("submission_submitted_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetStudentSubmission: submission milik student sendiri untuk satu assignment.
func (s *Service) GetStudentSubmission(ctx context.Context, assignmentID, studentID uuid.UUID) (*subModel.SubmissionModel, error) {
	var m subModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&m, "submission_assignment_id = ? AND submission_student_id = ?", assignmentID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Submission")
		}
		return nil, err
	}
	return &m, nil
}
