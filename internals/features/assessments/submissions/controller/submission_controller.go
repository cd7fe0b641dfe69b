// file: internals/features/assessments/submissions/controller/submission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	"kelasku_backend/internals/features/assessments/submissions/dto"
	"kelasku_backend/internals/features/assessments/submissions/service"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/policy"
)

type SubmissionController struct {
	DB        *gorm.DB
	Service   *service.Service
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Service:   service.NewService(db, policy.CreatorOnly{}),
		Validator: validator.New(),
	}
}

// 📌 POST /api/submissions/create
// Student ID diambil dari token, bukan body — tidak bisa submit atas nama
// orang lain.
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	sub, err := ctrl.Service.Submit(c.Context(), req.SubmissionAssignmentID, studentID, req.SubmissionPDFURL)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonCreated(c, "Submission berhasil dikumpulkan", dto.FromModel(sub))
}

// 📌 POST /api/assignments/:id/submit (alias lewat path assignment)
func (ctrl *SubmissionController) SubmitToAssignment(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	var req struct {
		SubmissionPDFURL string `json:"submission_pdf_url" validate:"required,url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	sub, err := ctrl.Service.Submit(c.Context(), assignmentID, studentID, req.SubmissionPDFURL)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonCreated(c, "Submission berhasil dikumpulkan", dto.FromModel(sub))
}

// 📌 GET /api/submissions/:id
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	sub, err := ctrl.Service.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(sub))
}

// 📌 GET /api/assignments/:id/submissions
// Hanya pembuat assignment.
func (ctrl *SubmissionController) ListByAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	list, err := ctrl.Service.ListByAssignment(c.Context(), assignmentID, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

// 📌 GET /api/assignments/:id/my-submission
func (ctrl *SubmissionController) GetMySubmission(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	sub, err := ctrl.Service.GetStudentSubmission(c.Context(), assignmentID, studentID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(sub))
}

// 📌 PUT /api/submissions/grade/:submissionId
// Override manual oleh pembuat assignment.
func (ctrl *SubmissionController) Grade(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	sub, err := ctrl.Service.Grade(c.Context(), submissionID, req.SubmissionScore, req.SubmissionFeedback, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonUpdated(c, "Nilai berhasil disimpan", dto.FromModel(sub))
}
