// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators decodes and validates request bodies using the
// `validate` struct tags of the models package.
package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidBody    = errors.New("invalid request body")
	ErrMissingField   = errors.New("missing field")
	ErrInvalidField   = errors.New("invalid field")
	ErrNotValidatable = errors.New("value cannot be validated")
)

// FieldError names the JSON field that failed validation.
type FieldError struct {
	Field string
	Tag   string
	err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.err
}

// MissingField reports that the named field or query parameter is absent.
func MissingField(field string) error {
	return &FieldError{Field: field, Tag: "required", err: ErrMissingField}
}

// InvalidField reports that the named field or query parameter is malformed.
func InvalidField(field string) error {
	return &FieldError{Field: field, err: ErrInvalidField}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

// maxBytes implements the `maxbytes=N` tag: a string of at most N bytes.
// The built-in `max` counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad maxbytes parameter %q on %s", fl.Param(), fl.FieldName()))
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return len(field.String()) <= limit
}

// Validate checks v against its `validate` tags and reports the first
// failing field as a *FieldError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrNotValidatable, err)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	if fe.Tag() == "required" {
		return &FieldError{Field: fe.Field(), Tag: fe.Tag(), err: ErrMissingField}
	}
	return &FieldError{Field: fe.Field(), Tag: fe.Tag(), err: ErrInvalidField}
}

// DecodeAndValidate decodes a JSON document from body into v and validates it.
func DecodeAndValidate(body io.Reader, v any) error {
	if body == nil {
		return ErrInvalidBody
	}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return Validate(v)
}
