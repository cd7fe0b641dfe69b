// file: internals/features/classroom/classrooms/controller/classroom_controller.go
package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	"kelasku_backend/internals/features/classroom/classrooms/dto"
	clsModel "kelasku_backend/internals/features/classroom/classrooms/model"
	"kelasku_backend/internals/features/classroom/classrooms/service"
	helper "kelasku_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Service   *service.Service
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{
		DB:        db,
		Service:   service.NewService(db),
		Validator: validator.New(),
	}
}

// 📌 POST /api/classrooms/create
func (ctrl *ClassroomController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	cls, err := ctrl.Service.Create(c.Context(), req, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(cls))
}

// 📌 POST /api/classrooms/join
func (ctrl *ClassroomController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.JoinClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	cls, err := ctrl.Service.JoinByCode(c.Context(), req.ClassroomJoinCode, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "Berhasil bergabung ke kelas", dto.FromModel(cls))
}

// 📌 POST /api/classrooms/:id/leave
func (ctrl *ClassroomController) Leave(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	if err := ctrl.Service.Leave(c.Context(), classroomID, userID); err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "Berhasil keluar dari kelas", nil)
}

// 📌 POST /api/classrooms/:id/promote
func (ctrl *ClassroomController) Promote(c *fiber.Ctx) error {
	return ctrl.membershipChange(c, ctrl.Service.Promote, "User berhasil dipromosikan jadi admin sekunder")
}

// 📌 POST /api/classrooms/:id/demote
func (ctrl *ClassroomController) Demote(c *fiber.Ctx) error {
	return ctrl.membershipChange(c, ctrl.Service.Demote, "User berhasil diturunkan jadi student")
}

// 📌 POST /api/classrooms/:id/remove-user
func (ctrl *ClassroomController) RemoveUser(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	var req dto.MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	if err := ctrl.Service.RemoveUser(c.Context(), classroomID, req.UserID, userID); err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "User berhasil dikeluarkan dari kelas", nil)
}

// 📌 PUT /api/classrooms/:id
func (ctrl *ClassroomController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	cls, err := ctrl.Service.Update(c.Context(), classroomID, req, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(cls))
}

// 📌 DELETE /api/classrooms/:id
func (ctrl *ClassroomController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	if err := ctrl.Service.Delete(c.Context(), classroomID, userID); err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"classroom_id": classroomID})
}

// 📌 GET /api/classrooms/:id
func (ctrl *ClassroomController) GetByID(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	cls, err := ctrl.Service.GetByID(c.Context(), classroomID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(cls))
}

// 📌 GET /api/classrooms/my
func (ctrl *ClassroomController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	list, err := ctrl.Service.ListForUser(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

// promote/demote punya bentuk handler yang identik, bedanya cuma operasi
// service dan pesan sukses.
func (ctrl *ClassroomController) membershipChange(
	c *fiber.Ctx,
	op func(ctx context.Context, classroomID, targetID, caller uuid.UUID) (*clsModel.ClassroomModel, error),
	okMsg string,
) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	var req dto.MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	cls, err := op(c.Context(), classroomID, req.UserID, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, okMsg, dto.FromModel(cls))
}
