// file: internals/features/assessments/assignments/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	"kelasku_backend/internals/features/assessments/assignments/dto"
	"kelasku_backend/internals/features/assessments/assignments/service"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/policy"
)

type AssignmentController struct {
	DB        *gorm.DB
	Service   *service.Service
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Service:   service.NewService(db, policy.CreatorOnly{}),
		Validator: validator.New(),
	}
}

// 📌 POST /api/assignments/create
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	asg, err := ctrl.Service.Create(c.Context(), req, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonCreated(c, "Assignment berhasil dibuat", dto.FromModel(asg))
}

// 📌 GET /api/assignments/:id
// Idempotent, tidak mengubah state apapun.
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	asg, err := ctrl.Service.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(asg))
}

// 📌 GET /api/assignments/classroom/:classroomId
func (ctrl *AssignmentController) ListByClassroom(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("classroomId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	list, err := ctrl.Service.ListByClassroom(c.Context(), classroomID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

// 📌 PUT /api/assignments/:id
// Hanya pembuat assignment yang boleh mengubah.
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	asg, err := ctrl.Service.Update(c.Context(), id, req, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonUpdated(c, "Assignment berhasil diperbarui", dto.FromModel(asg))
}
