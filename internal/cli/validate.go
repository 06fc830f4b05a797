package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// seats parses a seat count, falling back to def on empty input.
func seats(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("Invalid number entered for seats! Please enter a whole number of 0 or more.")
	}
	return n, nil
}

// fare parses a dollar amount, falling back to def on empty input.
func fare(s string, def decimal.Decimal) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, errors.New("Invalid number entered for fare! Please enter a valid amount.")
	}
	return d, nil
}

// yesNo reports ok=false when the answer is neither yes nor no.
func yesNo(s string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	return false, false
}
