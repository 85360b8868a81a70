//go:build unit

package newsletter_test

import (
	"testing"

	"cafe-fausse/internal/domain/newsletter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "sub@example.com", want: "sub@example.com"},
		{name: "normalized to lowercase", input: "Sub@Example.COM", want: "sub@example.com"},
		{name: "no at sign", input: "sub.example.com", errIs: newsletter.ErrInvalidEmail},
		{name: "no domain dot", input: "sub@example", errIs: newsletter.ErrInvalidEmail},
		{name: "empty", input: "", errIs: newsletter.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newsletter.NewEmail(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewSubscriber(t *testing.T) {
	email, err := newsletter.NewEmail("sub@example.com")
	require.NoError(t, err)

	t.Run("name is kept when present", func(t *testing.T) {
		name := "Ana Gomez"
		sub := newsletter.NewSubscriber(&name, email)
		require.NotNil(t, sub.Name())
		assert.Equal(t, "Ana Gomez", *sub.Name())
		assert.NotZero(t, sub.ID())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		name := "  Ana  "
		sub := newsletter.NewSubscriber(&name, email)
		require.NotNil(t, sub.Name())
		assert.Equal(t, "Ana", *sub.Name())
	})

	t.Run("blank name becomes nil", func(t *testing.T) {
		name := "   "
		sub := newsletter.NewSubscriber(&name, email)
		assert.Nil(t, sub.Name())
	})

	t.Run("nil name stays nil", func(t *testing.T) {
		sub := newsletter.NewSubscriber(nil, email)
		assert.Nil(t, sub.Name())
	})
}
