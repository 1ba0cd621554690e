package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/accounts/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("username", "alice"),
			validator.ValidEmail("email", "alice@example.com"),
			validator.MinLenString("password", "secret123", 8),
		)
		assert.NoError(t, err)
	})

	t.Run("accumulates all failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("username", "  "),
			validator.ValidEmail("email", "nope"),
			validator.MinLenString("password", "short", 8),
		)
		require.Error(t, err)

		verrs := validator.Extract(err)
		require.Len(t, verrs, 3)
		assert.ElementsMatch(t, []string{"username", "email", "password"}, verrs.Fields())
	})

	t.Run("ByField groups messages", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("password", ""),
			validator.MinLenString("password", "", 8),
		)
		require.Error(t, err)

		byField := validator.Extract(err).ByField()
		assert.Len(t, byField["password"], 2)
	})
}

func TestRules(t *testing.T) {
	t.Parallel()

	t.Run("RequiredString", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			value string
			ok    bool
		}{
			{"alice", true},
			{" padded ", true},
			{"", false},
			{"   ", false},
		}
		for _, tt := range tests {
			rule := validator.RequiredString("f", tt.value)
			assert.Equal(t, tt.ok, rule.Check(), "value %q", tt.value)
		}
	})

	t.Run("ValidEmail", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			value string
			ok    bool
		}{
			{"user@example.com", true},
			{"first.last+tag@sub.example.co", true},
			{"no-at-sign", false},
			{"user@", false},
			{"@example.com", false},
			{"user@example", false},
		}
		for _, tt := range tests {
			rule := validator.ValidEmail("email", tt.value)
			assert.Equal(t, tt.ok, rule.Check(), "value %q", tt.value)
		}
	})

	t.Run("MinLenString and MaxLenString", func(t *testing.T) {
		t.Parallel()

		assert.True(t, validator.MinLenString("f", "12345678", 8).Check())
		assert.False(t, validator.MinLenString("f", "1234567", 8).Check())
		assert.True(t, validator.MaxLenString("f", "short", 25).Check())
		assert.False(t, validator.MaxLenString("f", "123456", 5).Check())
	})

	t.Run("OneOf", func(t *testing.T) {
		t.Parallel()

		assert.True(t, validator.OneOf("role", "user", "user", "admin").Check())
		assert.False(t, validator.OneOf("role", "root", "user", "admin").Check())
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.RequiredString("email", ""))
	require.Error(t, err)
	assert.Equal(t, "validation failed: email: field is required", err.Error())

	var empty validator.ValidationErrors
	assert.Equal(t, "validation failed", empty.Error())
}

func ExampleApply() {
	err := validator.Apply(
		validator.RequiredString("username", ""),
	)
	fmt.Println(err)
	// Output: validation failed: username: field is required
}
