package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLamportsToSOL(t *testing.T) {
	tests := []struct {
		lamports uint64
		want     string
	}{
		{1_500_000_000, "1.5"},
		{0, "0"},
		{1, "0.000000001"},
		{24981836, "0.024981836"},
		{2_000_000_000, "2"},
		{500_000_000_000_000_000, "500000000"},
		{18446744073709551615, "18446744073.709551615"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LamportsToSOL(tt.lamports), "lamports=%d", tt.lamports)
	}
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1.5", FormatUnits(1_500_000, 6))
	assert.Equal(t, "42", FormatUnits(42, 0))
	assert.Equal(t, "0.01", FormatUnits(10_000, 6))
}

func TestFormatWithDecimals(t *testing.T) {
	assert.Equal(t, "0.024981836", formatWithDecimals(24981836, 9))
	assert.Equal(t, "0.000000000", formatWithDecimals(0, 9))
	assert.Equal(t, "1.500000000", formatWithDecimals(1_500_000_000, 9))
}
