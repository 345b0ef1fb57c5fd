package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance.
// Field names in errors are taken from the json tag.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		validate.RegisterCustomTypeFunc(nullableValue[string], dto.Nullable[string]{})
		validate.RegisterCustomTypeFunc(nullableValue[int64], dto.Nullable[int64]{})
	})
	return validate
}

// Validate checks every field of v against its validate tags.
// All violations are collected; the returned error wraps apperrors.ErrValidationFailed.
func Validate(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError([]string{err.Error()})
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, formatFieldError(fe))
	}
	return apperrors.NewValidationError(messages)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// nullableValue exposes the wrapped value to the validator as a pointer, so
// omitempty skips absent or null fields but still checks an explicit zero.
func nullableValue[T any](field reflect.Value) interface{} {
	n, ok := field.Interface().(dto.Nullable[T])
	if !ok {
		return (*T)(nil)
	}
	return n.Ptr()
}
