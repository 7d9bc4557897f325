// Package validation evaluates raw, string-valued form input against named
// field validators and collects every failing field before returning.
package validation

import (
	"net/mail"
	"strings"
)

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

// Add appends messages for a field.
func (f FieldErrors) Add(field string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	f[field] = append(f[field], msgs...)
}

// Errors aggregates field-level failures with a summary message. Mutation
// entry points return this value instead of throwing.
type Errors struct {
	FieldErrors FieldErrors `json:"errors"`
	Message     string      `json:"message"`
}

func (e *Errors) Error() string {
	return e.Message
}

// FieldValidator checks one raw value and returns human-readable messages
// for every constraint it violates.
type FieldValidator struct {
	Field string
	Check func(raw string) []string
}

// Validate runs every validator against the input and collects all failures.
// It returns nil when the input is valid.
func Validate(input map[string]string, validators []FieldValidator, summary string) *Errors {
	fieldErrs := FieldErrors{}
	for _, v := range validators {
		if msgs := v.Check(input[v.Field]); len(msgs) > 0 {
			fieldErrs.Add(v.Field, msgs...)
		}
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	return &Errors{FieldErrors: fieldErrs, Message: summary}
}

// Required fails on empty or whitespace-only input.
func Required(msg string) func(string) []string {
	return func(raw string) []string {
		if strings.TrimSpace(raw) == "" {
			return []string{msg}
		}
		return nil
	}
}

// MinLength fails on trimmed input shorter than n characters.
func MinLength(n int, msg string) func(string) []string {
	return func(raw string) []string {
		if len(strings.TrimSpace(raw)) < n {
			return []string{msg}
		}
		return nil
	}
}

// Email fails on input that is not a valid address.
func Email(msg string) func(string) []string {
	return func(raw string) []string {
		addr, err := mail.ParseAddress(strings.TrimSpace(raw))
		if err != nil || addr.Address != strings.TrimSpace(raw) {
			return []string{msg}
		}
		return nil
	}
}

// OneOf fails on input outside the allowed value set.
func OneOf(allowed []string, msg string) func(string) []string {
	return func(raw string) []string {
		value := strings.TrimSpace(raw)
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return []string{msg}
	}
}
