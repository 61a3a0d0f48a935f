package validator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/marketscout/pkg/httpx"
)

// detectedDateSkew is the clock-skew tolerance for the not_far_future rule:
// scraped observation timestamps may run ahead of this server by up to 1 h.
const detectedDateSkew = time.Hour

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// not_far_future: a timestamp must not lie more than 1 h ahead of now.
	// Nil (omitted) values pass; pair with omitempty semantics via pointers.
	if err := validate.RegisterValidation("not_far_future", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.After(time.Now().Add(detectedDateSkew))
	}); err != nil {
		panic(fmt.Errorf("register not_far_future: %w", err))
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FieldViolation is one validation failure: the JSON field name plus a
// human-readable message. Violations keep struct declaration order so a
// client sees all problems at once, deterministically.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations converts validator.ValidationErrors into an ordered list of
// field violations. Non-validation errors yield an empty list.
func Violations(err error) []FieldViolation {
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) {
		return nil
	}
	out := make([]FieldViolation, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldViolation{Field: e.Field(), Message: formatFieldError(e)})
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	for _, v := range Violations(err) {
		errs[v.Field] = v.Message
	}
	return errs
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "http_url":
		return "Must be an absolute http or https URL"
	case "not_far_future":
		return "Must not be more than 1 hour in the future"
	case "numeric":
		return "Must be a numeric value"
	case "alpha":
		return "Must contain only letters"
	case "alphanum":
		return "Must contain only letters and numbers"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails. Validation
// failures are reported as an ordered list of {field, message} objects.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": Violations(err),
		})
		return nil, false
	}
	return &req, true
}
