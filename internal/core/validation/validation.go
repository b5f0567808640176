package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"lablend/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field's json name to its localized error message.
type FieldErrors map[string]string

var (
	once     sync.Once
	validate *validator.Validate
)

var digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

// engine returns the shared validator instance with all custom rules registered.
func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// Report fields by their json name so error maps line up with payloads
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// enum=<set>: membership in the named domain option table
		_ = validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			set, ok := domain.OptionSets[fl.Param()]
			if !ok {
				return false
			}
			return set.Contains(fl.Field().String())
		})

		// digits: all-digit string (format is advisory, not normalized)
		_ = validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
			return digitsRegexp.MatchString(fl.Field().String())
		})

		// aftertomorrow: strictly greater than now+24h. The boundary moves
		// with the clock: every call re-evaluates, and exactly now+24h fails.
		_ = validate.RegisterValidation("aftertomorrow", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			if !ok {
				return false
			}
			return t.After(time.Now().Add(24 * time.Hour))
		})
	})
	return validate
}

// Struct validates a candidate record and returns the complete set of
// field errors in one pass, or nil when the candidate is valid. It is
// pure: no network, no persistence, safe to call from anywhere.
func Struct(candidate interface{}) FieldErrors {
	err := engine().Struct(candidate)
	if err == nil {
		return nil
	}

	fields := FieldErrors{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fields[fe.Field()] = message(fe)
		}
		return fields
	}

	// Non-field error (invalid candidate type); surface it generically
	fields["_"] = err.Error()
	return fields
}

// requiredMessages carries the per-field "required" messages shown in forms.
var requiredMessages = map[string]string{
	"material_type": "El tipo de material es obligatorio",
	"brand":         "La marca es obligatoria",
	"model":         "El modelo es obligatorio",
	"status":        "El estado es obligatorio",
	"first_name":    "El nombre es obligatorio",
	"last_name":     "El apellido paterno es obligatorio",
	"user_type":     "El tipo de usuario es obligatorio",
	"username":      "El nombre de usuario es obligatorio",
	"email":         "El correo es obligatorio",
	"password":      "La contraseña es obligatoria",
	"name":          "El nombre es obligatorio",
	"user_id":       "El usuario es obligatorio",
	"material_id":   "El material es obligatorio",
	"return_date":   "La fecha de devolución es obligatoria",
	"loan_status":   "El estado es obligatorio",
}

// message converts a single validation failure into its localized message.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return "Este campo es obligatorio"
	case "email":
		return "Correo inválido"
	case "enum":
		if fe.Param() == "user_type" {
			return "Tipo de usuario inválido"
		}
		return "Estado inválido"
	case "digits":
		return "Solo números"
	case "min":
		if fe.Field() == "phone_number" {
			return "Mínimo " + fe.Param() + " dígitos"
		}
		return "Mínimo " + fe.Param() + " caracteres"
	case "aftertomorrow":
		return "La fecha de devolución no puede ser menor a mañana"
	default:
		return "Valor inválido"
	}
}
