//go:build unit

package user_test

import (
	"strings"
	"testing"

	"gearshare/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "user@example.com", want: "user@example.com"},
		{name: "subaddress and dots", input: "first.last+tag@mail.example.org", want: "first.last+tag@mail.example.org"},
		{name: "surrounding whitespace is trimmed", input: "  user@example.com  ", want: "user@example.com"},
		{name: "missing at sign", input: "user.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "user@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "user@example", errIs: user.ErrInvalidEmail},
		{name: "empty string", input: "", errIs: user.ErrInvalidEmail},
		{name: "spaces inside", input: "us er@example.com", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.want, email.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := user.NewName("Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name.Value())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		name, err := user.NewName("  Alice  ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name.Value())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewName("")
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("whitespace only name", func(t *testing.T) {
		_, err := user.NewName("   ")
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("maximum length name", func(t *testing.T) {
		_, err := user.NewName(strings.Repeat("a", user.MaxNameLength))
		require.NoError(t, err)
	})

	t.Run("name exceeds maximum length", func(t *testing.T) {
		_, err := user.NewName(strings.Repeat("a", user.MaxNameLength+1))
		require.ErrorIs(t, err, user.ErrNameTooLong)
	})
}
