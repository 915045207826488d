package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumMembership(t *testing.T) {
	for _, d := range Departments {
		assert.True(t, IsValidDepartment(d), d)
	}
	assert.False(t, IsValidDepartment("Radiology"))
	assert.False(t, IsValidDepartment(""))
	assert.False(t, IsValidDepartment("icu"), "membership is case-sensitive")

	for _, s := range Statuses {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("Sleeping"))
	assert.False(t, IsValidStatus(""))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("fullName", "required")
	assert.EqualError(t, err, "invalid fullName: required")
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", err)))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(nil))
}
