package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Usar el nombre JSON en los mensajes (el frontend no conoce los nombres Go).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate aplica los tags `validate` del struct y devuelve un *ValidationError
// con el primer campo inválido.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "Solicitud inválida."}
	}

	return &ValidationError{Message: fieldMessage(fieldErrs[0])}
}

// Bind combina DecodeJSON + Validate.
func Bind(r *http.Request, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("El campo '%s' es obligatorio.", field)
	case "email":
		return fmt.Sprintf("El campo '%s' debe ser un correo válido.", field)
	case "gt":
		return fmt.Sprintf("El campo '%s' debe ser mayor a %s.", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo '%s' debe tener al menos %s caracteres.", field, fe.Param())
		}
		return fmt.Sprintf("El campo '%s' debe ser mayor o igual a %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("El campo '%s' debe ser mayor o igual a %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("El campo '%s' excede el largo máximo (%s).", field, fe.Param())
	default:
		return fmt.Sprintf("El campo '%s' no es válido.", field)
	}
}
