// file: internals/helpers/validation.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationFieldErrors mengubah error validator.v10 menjadi map
// field → daftar pesan, siap dikirim via JsonValidationError.
func ValidationFieldErrors(err error) map[string][]string {
	fieldErrors := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
	}
	return fieldErrors
}
