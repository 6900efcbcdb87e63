// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton instance.
//
// Request structs declare their constraints with `validate` tags:
//
//	type RegisterRequest struct {
//	    Username string `validate:"required,max=64"`
//	    Password string `validate:"required"`
//	}
//
// and handlers call ValidateStruct, turning the first failure into a
// user-facing message via Message().
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// iso8601date validates YYYY-MM-DD date strings as submitted by the
// add-event form.
const iso8601dateTag = "iso8601date"

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// The datetime tag needs its layout repeated at every use site;
		// register the app's one true date format once instead.
		//nolint:errcheck // registration only fails for empty tag names
		validate.RegisterValidation(iso8601dateTag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if len(s) != 10 {
				return false
			}
			var y, m, d int
			if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &y, &m, &d); err != nil {
				return false
			}
			return m >= 1 && m <= 12 && d >= 1 && d <= 31
		})
	})
	return validate
}

// FieldError describes a single failed constraint.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed validation: %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s failed validation: %s", e.Field, e.Tag)
}

// RequestError is the collection of failed constraints for one request.
type RequestError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return strings.Join(msgs, "; ")
}

// Message returns a short user-facing message for the first failed
// field, suitable for inline page rendering.
func (e *RequestError) Message() string {
	if len(e.Fields) == 0 {
		return "Invalid input."
	}
	f := e.Fields[0]
	switch f.Tag {
	case "required":
		return fmt.Sprintf("%s is required.", f.Field)
	case "max":
		return fmt.Sprintf("%s is too long.", f.Field)
	case "email":
		return fmt.Sprintf("%s is not a valid email address.", f.Field)
	case iso8601dateTag:
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD form.", f.Field)
	case "latitude", "longitude", "numeric":
		return fmt.Sprintf("%s is not a valid coordinate.", f.Field)
	default:
		return fmt.Sprintf("%s is invalid.", f.Field)
	}
}

// ValidateStruct validates a struct against its validate tags. It
// returns a *RequestError on constraint failures, or an opaque error if
// the value cannot be validated at all.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	reqErr := &RequestError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		reqErr.Fields = append(reqErr.Fields, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return reqErr
}
