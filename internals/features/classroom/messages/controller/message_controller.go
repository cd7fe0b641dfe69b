// file: internals/features/classroom/messages/controller/message_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	clsModel "kelasku_backend/internals/features/classroom/classrooms/model"
	"kelasku_backend/internals/features/classroom/messages/dto"
	msgModel "kelasku_backend/internals/features/classroom/messages/model"
	helper "kelasku_backend/internals/helpers"
)

type MessageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db, Validator: validator.New()}
}

// 📌 POST /api/messages/send
// Pesan harus punya konten teks dan/atau lampiran. Pengirim harus member
// kelas tujuan.
func (ctrl *MessageController) Send(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}
	if strings.TrimSpace(req.MessageContent) == "" && req.MessageFileURL == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pesan harus punya konten atau lampiran")
	}

	var cls clsModel.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&cls, "classroom_id = ?", req.MessageClassroomID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
	}
	if !cls.IsMember(userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan anggota kelas ini")
	}

	msg := req.ToModel(userID)
	if err := ctrl.DB.WithContext(c.Context()).Create(&msg).Error; err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan terkirim", msg)
}

// 📌 GET /api/messages/classroom/:classroomId
// Terbaru dulu, dengan paging standar.
func (ctrl *MessageController) ListByClassroom(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Params("classroomId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID classroom tidak valid")
	}

	var cls clsModel.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&cls, "classroom_id = ?", classroomID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
	}
	if !cls.IsMember(userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan anggota kelas ini")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&msgModel.MessageModel{}).
		Where("message_classroom_id = ?", classroomID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var list []msgModel.MessageModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("message_classroom_id = ?", classroomID).
		Order("message_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", list, &pg)
}
