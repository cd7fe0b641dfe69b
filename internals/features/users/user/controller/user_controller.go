// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/users/user/dto"
	userModel "kelasku_backend/internals/features/users/user/model"
	helper "kelasku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// 📌 POST /api/users/add
// Idempotent by email: kalau email sudah terdaftar, balikan 200 dengan user
// yang sudah ada, bukan error.
func (ctrl *UserController) Add(c *fiber.Ctx) error {
	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var existing userModel.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&existing, "user_email = ?", email).Error
	if err == nil {
		return helper.JsonOK(c, "User sudah terdaftar", dto.FromModel(&existing))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek user")
	}

	u := req.ToModel()
	u.UserEmail = email
	if err := ctrl.DB.WithContext(c.Context()).Create(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(&u))
}

// 📌 GET /api/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("user_created_at ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data user")
	}

	return helper.JsonOK(c, "OK", dto.FromModels(users))
}
