// file: internals/apperr/apperr.go
package apperr

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Sentinel errors untuk lapisan service. Controller memetakan ke status HTTP
// lewat HTTPStatus, jadi taksonomi cukup didefinisikan sekali di sini.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("resource not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrDeadlinePassed      = errors.New("submission deadline has passed")
	ErrDuplicateSubmission = errors.New("submission already exists")
	ErrAlreadyMember       = errors.New("user is already in the classroom")
	ErrFetch               = errors.New("document fetch failed")
	ErrAPI                 = errors.New("generative api call failed")
	ErrAPIKeyMissing       = errors.New("generative api key is not configured")
)

// Validation membungkus pesan field error dengan sentinel ErrValidation.
func Validation(msg string) error {
	return &wrapped{sentinel: ErrValidation, msg: msg}
}

// NotFound dengan nama entitas ("Assignment", "Submission", ...).
func NotFound(entity string) error {
	return &wrapped{sentinel: ErrNotFound, msg: entity + " not found"}
}

// Forbidden dengan pesan spesifik aksi.
func Forbidden(msg string) error {
	return &wrapped{sentinel: ErrNotAuthorized, msg: msg}
}

// Upstream membungkus kegagalan dependensi eksternal (fetch/API).
func Upstream(sentinel error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &wrapped{sentinel: sentinel, msg: sentinel.Error() + ": " + cause.Error()}
}

type wrapped struct {
	sentinel error
	msg      string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }

// HTTPStatus memetakan error service ke status HTTP.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDeadlinePassed), errors.Is(err, ErrAlreadyMember):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, ErrDuplicateSubmission):
		return fiber.StatusConflict
	case errors.Is(err, ErrFetch), errors.Is(err, ErrAPI):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// IsUniqueViolation mendeteksi pelanggaran unique constraint dari driver
// (postgres "duplicate key ... unique constraint", sqlite
// "UNIQUE constraint failed").
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "duplicate key") ||
		strings.Contains(le, "unique constraint") ||
		strings.Contains(le, "unique constraint failed")
}
