// Package validation checks incoming task and label payloads before they
// reach a store. Every violated constraint is reported, not just the first.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/tally/internal/models"
)

// ErrValidation matches every *ValidationError
var ErrValidation = errors.New("validation failed")

// Violation describes one failed constraint
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + " " + v.Message
}

// ValidationError carries all violations of a payload
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// Validate checks v against its struct tags.
// It returns nil or a *ValidationError listing every violation.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Violations: []Violation{{Field: "body", Message: err.Error()}}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{Field: fe.Field(), Message: message(fe)})
	}
	return &ValidationError{Violations: violations}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can not be empty"
	case "min":
		if fe.Param() == "1" {
			return "can not be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("can not be longer than %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %q constraint", fe.Tag())
	}
}

// Decode reads a JSON payload into T and validates it
func Decode[T any](r io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return payload, bodyViolation(fmt.Sprintf("is not valid JSON: %v", err))
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return payload, bodyViolation("must contain a single JSON object")
	}
	if err := Validate(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func bodyViolation(message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: "body", Message: message}}}
}

// DecodeCreateTask decodes and validates a task creation payload
func DecodeCreateTask(r io.Reader) (models.CreateTask, error) {
	return Decode[models.CreateTask](r)
}

// DecodeUpdateTask decodes and validates a partial task update
func DecodeUpdateTask(r io.Reader) (models.UpdateTask, error) {
	return Decode[models.UpdateTask](r)
}

// DecodeCreateLabel decodes and validates a label creation payload
func DecodeCreateLabel(r io.Reader) (models.CreateLabel, error) {
	return Decode[models.CreateLabel](r)
}
