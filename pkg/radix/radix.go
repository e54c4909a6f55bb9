// Package radix converts share ordinates between arbitrary-precision integers
// and their textual form in bases 2 through 36.
package radix

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	MinBase = 2
	MaxBase = 36
)

var (
	ErrInvalidDigit = errors.New("invalid digit")
	ErrInvalidBase  = errors.New("base must be between 2 and 36")
	ErrNegative     = errors.New("cannot encode a negative value")
)

// InvalidDigitError reports the first character of an encoded value that is
// not a legal digit for the declared base.
type InvalidDigitError struct {
	Char rune
	Base int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit '%c' for base %d", e.Char, e.Base)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w, got %d", ErrInvalidBase, base)
	}
	return nil
}

// Decode interprets digits as a big-endian number in the given base.
// Letters are case-insensitive. An empty string decodes to zero.
func Decode(digits string, base int) (*big.Int, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}

	b := big.NewInt(int64(base))
	acc := new(big.Int)
	d := new(big.Int)
	for _, c := range digits {
		v := digitValue(c)
		if v < 0 || v >= base {
			return nil, &InvalidDigitError{Char: c, Base: base}
		}
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(v)))
	}
	return acc, nil
}

// digitValue maps 0-9, a-z and A-Z to their digit value, anything else to -1.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Encode formats a non-negative value in the given base using lowercase
// digits. Leading zeros are never produced.
func Encode(v *big.Int, base int) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}
	if v.Sign() < 0 {
		return "", ErrNegative
	}
	return v.Text(base), nil
}
