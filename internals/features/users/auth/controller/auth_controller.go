// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	authService "kelasku_backend/internals/features/users/auth/service"
	userDTO "kelasku_backend/internals/features/users/user/dto"
	helper "kelasku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// 📌 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var in authService.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	res, err := authService.Register(c.Context(), ctrl.DB, in)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonCreated(c, "Registrasi berhasil", authPayload(res))
}

// 📌 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var in authService.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	res, err := authService.Login(c.Context(), ctrl.DB, in)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	setRefreshCookie(c, res.Tokens.RefreshToken)
	return helper.JsonOK(c, "Login berhasil", authPayload(res))
}

// 📌 POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var in authService.GoogleLoginInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	res, err := authService.GoogleLogin(c.Context(), ctrl.DB, in)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	setRefreshCookie(c, res.Tokens.RefreshToken)
	return helper.JsonOK(c, "Login Google berhasil", authPayload(res))
}

// 📌 POST /api/auth/refresh
// Refresh token dibaca dari cookie, fallback ke body.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	token := c.Cookies("refresh_token")
	if token == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		token = body.RefreshToken
	}
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	res, err := authService.Refresh(c.Context(), ctrl.DB, token)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	setRefreshCookie(c, res.Tokens.RefreshToken)
	return helper.JsonOK(c, "Token diperbarui", authPayload(res))
}

// 📌 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModelLookup
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users").
		Where("user_id = ?", userID).
		Take(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", user)
}

type userModelLookup struct {
	UserID       string `json:"user_id" gorm:"column:user_id"`
	UserName     string `json:"user_name" gorm:"column:user_name"`
	UserEmail    string `json:"user_email" gorm:"column:user_email"`
	UserPhotoURL string `json:"user_photo_url" gorm:"column:user_photo_url"`
}

func authPayload(res *authService.AuthResult) fiber.Map {
	return fiber.Map{
		"user":          userDTO.FromModel(res.User),
		"access_token":  res.Tokens.AccessToken,
		"refresh_token": res.Tokens.RefreshToken,
	}
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}
