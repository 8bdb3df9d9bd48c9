package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1200", 120000},
		{"1200.00", 120000},
		{"1200.5", 120050},
		{"0", 0},
		{".75", 75},
		{"$1,200.00", 120000},
		{" 40000 ", 4000000},
		{"-50.00", -5000},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCents(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12.345", "1.2.3", "12a"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCents(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,500.00", FormatUSD(150000))
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$40,000.00", FormatUSD(4000000))
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "-$50.00", FormatUSD(-5000))
}
