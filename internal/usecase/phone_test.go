package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizePhoneNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"internacional com separadores", "+44 20 7946 0958", "+442079460958"},
		{"formato US com parênteses", "(555) 123-4567", "+15551234567"},
		{"11 dígitos começando com 1", "15551234567", "+15551234567"},
		{"espaço antes do + não conta como prefixo", " +(555) 123-4567", "+15551234567"},
		{"10 dígitos sem código do país", "5551234567", "+15551234567"},
		{"mais de 7 dígitos sem prefixo", "442079460958", "+442079460958"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StandardizePhoneNumber(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStandardizePhoneNumber_Invalid(t *testing.T) {
	for _, input := range []string{"123", "", "abc", "555-123"} {
		t.Run("rejeita "+input, func(t *testing.T) {
			_, err := StandardizePhoneNumber(input)
			assert.ErrorIs(t, err, ErrInvalidPhone)
		})
	}
}

// Normalizar um número já canônico é ponto fixo.
func TestStandardizePhoneNumber_Idempotent(t *testing.T) {
	inputs := []string{"+44 20 7946 0958", "(555) 123-4567", "15551234567", "5551234567"}

	for _, input := range inputs {
		once, err := StandardizePhoneNumber(input)
		require.NoError(t, err)

		twice, err := StandardizePhoneNumber(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	}
}
