package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a message is not a non-negative hexadecimal integer
var ErrInvalidHex = errors.New("invalid hexadecimal input")

// ParseHexMessage parses s as a base-16 integer. Surrounding whitespace and
// an optional 0x prefix are accepted; signs and trailing garbage are not.
func ParseHexMessage(s string) (int64, error) {
	digits := strings.TrimSpace(s)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}

	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errors.Join(ErrInvalidHex, err))
	}
	return v, nil
}

// FormatHex renders v in lower-case hexadecimal without a prefix
func FormatHex(v int64) string {
	return strconv.FormatInt(v, 16)
}
