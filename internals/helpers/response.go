// file: internals/helpers/response.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// ✅ Konversi error validator.v10 jadi map field → pesan, dipakai semua
// controller sebelum masuk service.
func ValidationFieldErrors(err error) map[string][]string {
	out := map[string][]string{}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}

	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "url":
		return "harus berupa URL yang valid"
	case "email":
		return "harus berupa email yang valid"
	case "max":
		return "melebihi panjang maksimum " + fe.Param()
	case "min":
		return "kurang dari nilai minimum " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	default:
		return fe.Tag()
	}
}
