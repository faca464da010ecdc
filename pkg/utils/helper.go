package utils

import (
	"fmt"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// FormatAmount normalizes an amount to a fixed-point decimal string with
// exactly two fractional digits, the form the payment processor expects.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
