//go:build unit

package booking_test

import (
	"testing"

	"parkeaze/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum valid code", value: 1000},
		{name: "maximum valid code", value: 9999},
		{name: "three digits", value: 999, errIs: booking.ErrInvalidCode},
		{name: "five digits", value: 10000, errIs: booking.ErrInvalidCode},
		{name: "zero", value: 0, errIs: booking.ErrInvalidCode},
		{name: "negative", value: -1234, errIs: booking.ErrInvalidCode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, err := booking.NewCode(c.value)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.value, code.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := booking.GenerateCode()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, code.Value(), 1000)
		assert.LessOrEqual(t, code.Value(), 9999)
	}
}

func TestCodeString(t *testing.T) {
	code, err := booking.NewCode(4321)
	require.NoError(t, err)
	assert.Equal(t, "4321", code.String())
}
