package validator

import (
	"errors"
	"maps"
	"slices"

	"github.com/garrettladley/calm/internal/xerrors"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of
	// field to problem. returns nil if no errors are found
	Validate() map[string]string
}

// Validate turns every problem into an *xerrors.Error, ordered by field.
func Validate(v Validator) error {
	problems := v.Validate()
	if len(problems) == 0 {
		return nil
	}

	errs := make([]error, 0, len(problems))
	for _, field := range slices.Sorted(maps.Keys(problems)) {
		errs = append(errs, xerrors.Invalid(field, xerrors.WithMessage(problems[field])))
	}
	return errors.Join(errs...)
}
