package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientmeta/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("default message when empty", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("lists every failure", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "country", Message: "field is required"})
		errs.Add(validator.ValidationError{Field: "language", Message: "field is required"})
		assert.Equal(t, "validation failed: country: field is required; language: field is required", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "region", Message: "a"})
	errs.Add(validator.ValidationError{Field: "region", Message: "b"})
	errs.Add(validator.ValidationError{Field: "language", Message: "c"})

	assert.True(t, errs.Has("region"))
	assert.False(t, errs.Has("country"))
	assert.Equal(t, []string{"a", "b"}, errs.Get("region"))
	assert.Equal(t, map[string][]string{"region": {"a", "b"}, "language": {"c"}}, errs.Map())
	assert.Nil(t, validator.ValidationErrors{}.Map())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("country", "US"),
			validator.RequiredString("language", "en"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failed rules in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("country", ""),
			validator.RequiredString("region", "CA"),
			validator.RequiredString("language", "   "),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "country", errs[0].Field)
		assert.Equal(t, "language", errs[1].Field)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.RequiredString("country", ""))
	wrapped := fmt.Errorf("bind: %w", err)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	assert.False(t, validator.IsValidationError(fmt.Errorf("other")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}
