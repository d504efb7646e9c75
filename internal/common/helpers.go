package common

import (
	"strconv"
	"strings"
)

const (
	SOLDecimals = 9 // SOL has 9 decimals (lamports)
)

// LamportsToSOL converts lamports to SOL string without float precision loss.
// Trailing zeros are dropped: 1500000000 -> "1.5", 2000000000 -> "2".
func LamportsToSOL(lamports uint64) string {
	return FormatUnits(lamports, SOLDecimals)
}

// FormatUnits renders an amount of smallest units as a decimal string in the
// display unit, where one display unit is 10^decimals smallest units.
func FormatUnits(value uint64, decimals int) string {
	if decimals <= 0 {
		return strconv.FormatUint(value, 10)
	}

	s := formatWithDecimals(value, decimals)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}
