package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCollectsEveryFailingField(t *testing.T) {
	validators := []FieldValidator{
		{Field: "name", Check: Required("name is required")},
		{Field: "email", Check: Email("invalid email")},
		{Field: "status", Check: OneOf([]string{"pending", "paid"}, "invalid status")},
	}

	errs := Validate(map[string]string{
		"name":   "",
		"email":  "not-an-email",
		"status": "overdue",
	}, validators, "validation failed")

	require.NotNil(t, errs)
	assert.Equal(t, "validation failed", errs.Message)
	assert.Len(t, errs.FieldErrors, 3)
	assert.Equal(t, []string{"name is required"}, errs.FieldErrors["name"])
	assert.Equal(t, []string{"invalid email"}, errs.FieldErrors["email"])
	assert.Equal(t, []string{"invalid status"}, errs.FieldErrors["status"])
}

func TestValidateReturnsNilOnSuccess(t *testing.T) {
	validators := []FieldValidator{
		{Field: "email", Check: Email("invalid email")},
		{Field: "password", Check: MinLength(6, "too short")},
	}

	errs := Validate(map[string]string{
		"email":    "ops@example.com",
		"password": "hunter22",
	}, validators, "validation failed")
	assert.Nil(t, errs)
}

func TestMultipleMessagesPerField(t *testing.T) {
	validators := []FieldValidator{
		{Field: "password", Check: Required("password is required")},
		{Field: "password", Check: MinLength(6, "password too short")},
	}

	errs := Validate(map[string]string{"password": ""}, validators, "bad input")
	require.NotNil(t, errs)
	assert.Equal(t, []string{"password is required", "password too short"}, errs.FieldErrors["password"])
}

func TestMinLengthTrimsInput(t *testing.T) {
	check := MinLength(3, "too short")
	assert.NotEmpty(t, check("  ab "))
	assert.Empty(t, check("abc"))
}
