// Package field implements the modular arithmetic used to interpolate shares
// over a prime field. Every value returned by this package lies in [0, m).
package field

import (
	"errors"
	"math/big"
)

var (
	ErrNoInverse       = errors.New("no modular inverse exists")
	ErrInvalidModulus  = errors.New("modulus must be positive")
	defaultPrimeString = "115792089237316195423570985008687907853269984665640564039457584007913129639747"
)

// DefaultPrime returns a fresh copy of 2^256 - 189.
func DefaultPrime() *big.Int {
	p, _ := new(big.Int).SetString(defaultPrimeString, 10)
	return p
}

// Reduce returns a mod m in [0, m). big.Int.Mod is Euclidean, so negative
// inputs land in the non-negative residue class.
func Reduce(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

func Add(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

func Sub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

func Mul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

func Neg(a, m *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, m)
}

// Inverse returns a^-1 mod m using the extended Euclidean algorithm.
// A modulus of one yields zero. ErrNoInverse is returned when a is congruent
// to zero or shares a factor with m.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if m.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int), nil
	}

	a = Reduce(a, m)
	if a.Sign() == 0 {
		return nil, ErrNoInverse
	}

	oldR, r := a, new(big.Int).Set(m)
	oldS, s := big.NewInt(1), new(big.Int)
	q, tmp := new(big.Int), new(big.Int)

	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)
	}

	if oldR.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}

	return oldS.Mod(oldS, m), nil
}
