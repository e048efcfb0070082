// Package validators exposes the struct validator used for config checks.
package validators

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

var (
	once     sync.Once
	instance *Validate
)

// New returns the shared validator instance. Tag metadata is cached per
// struct type, so a single instance serves every config load.
func New() *Validate {
	once.Do(func() {
		instance = validator.New()
	})
	return instance
}
