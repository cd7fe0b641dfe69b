// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kelasku_backend/internals/apperr"
	"kelasku_backend/internals/configs"
	userModel "kelasku_backend/internals/features/users/user/model"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type RegisterInput struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginInput struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResult struct {
	User   *userModel.UserModel
	Tokens TokenPair
}

// Register membuat akun lokal baru. Email dinormalisasi lowercase; email
// yang sudah terpakai ditolak lewat unique index, bukan read-then-write.
func Register(ctx context.Context, db *gorm.DB, in RegisterInput) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	u := userModel.UserModel{
		UserName:     in.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserPassword: &hashed,
	}
	if err := db.WithContext(ctx).Create(&u).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Validation("Email sudah terdaftar")
		}
		return nil, err
	}

	return issueFor(&u)
}

func Login(ctx context.Context, db *gorm.DB, in LoginInput) (*AuthResult, error) {
	var u userModel.UserModel
	if err := db.WithContext(ctx).
		First(&u, "user_email = ?", strings.ToLower(strings.TrimSpace(in.UserEmail))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("Email atau password salah")
		}
		return nil, err
	}

	if u.UserPassword == nil {
		return nil, apperr.Forbidden("Akun ini login lewat Google")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.UserPassword), []byte(in.UserPassword)); err != nil {
		return nil, apperr.Forbidden("Email atau password salah")
	}

	return issueFor(&u)
}

// GoogleLogin memverifikasi ID token Google lalu find-or-create user by
// email. Akun baru dari path ini tidak punya password lokal.
func GoogleLogin(ctx context.Context, db *gorm.DB, in GoogleLoginInput) (*AuthResult, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, apperr.Forbidden("ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil {
		return nil, apperr.Forbidden("ID token Google tidak bisa dibaca")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return nil, apperr.Forbidden("ID token Google tanpa email")
	}

	var u userModel.UserModel
	err = db.WithContext(ctx).First(&u, "user_email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    email,
			UserPhotoURL: claimSet.Picture,
			UserGoogleID: &claimSet.Sub,
		}
		if u.UserName == "" {
			u.UserName = strings.Split(email, "@")[0]
		}
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if u.UserGoogleID == nil {
			_ = db.WithContext(ctx).Model(&u).
				Update("user_google_id", claimSet.Sub).Error
		}
	}

	return issueFor(&u)
}

// Refresh menukar refresh token yang masih valid dengan pasangan baru.
func Refresh(ctx context.Context, db *gorm.DB, refreshToken string) (*AuthResult, error) {
	tok, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, apperr.Forbidden("Refresh token tidak valid")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Forbidden("Refresh token tidak valid")
	}
	idStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, apperr.Forbidden("Refresh token tidak valid")
	}

	var u userModel.UserModel
	if err := db.WithContext(ctx).First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}

	return issueFor(&u)
}

func issueFor(u *userModel.UserModel) (*AuthResult, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:   u,
		Tokens: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}
