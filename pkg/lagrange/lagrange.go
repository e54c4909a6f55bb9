// Package lagrange evaluates the interpolating polynomial of a set of shares
// over a prime field without reconstructing its coefficients.
package lagrange

import (
	"errors"
	"math/big"

	"github.com/strangelove-ventures/shardrecover/pkg/field"
	"github.com/strangelove-ventures/shardrecover/pkg/shares"
)

var ErrNoPoints = errors.New("no points to interpolate")

// InterpolateAtZero returns f(0) mod prime, the constant term of the unique
// polynomial of degree < len(points) through points.
func InterpolateAtZero(points []shares.Share, prime *big.Int) (*big.Int, error) {
	return InterpolateAt(points, new(big.Int), prime)
}

// InterpolateAt returns f(x) mod prime using the Lagrange basis
//
//	f(x) = sum_i y_i * prod_{j!=i} (x - x_j) / (x_i - x_j)
//
// A term whose denominator is zero mod prime, or has no inverse, contributes
// nothing; the remaining terms are still summed.
func InterpolateAt(points []shares.Share, x, prime *big.Int) (*big.Int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	sum := new(big.Int)
	num, den := new(big.Int), new(big.Int)
	for i, pi := range points {
		num.SetInt64(1)
		den.SetInt64(1)
		for j, pj := range points {
			if i == j {
				continue
			}
			num = field.Mul(num, field.Sub(x, pj.X, prime), prime)
			den = field.Mul(den, field.Sub(pi.X, pj.X, prime), prime)
		}

		if den.Sign() == 0 {
			continue
		}
		inv, err := field.Inverse(den, prime)
		if err != nil {
			continue
		}

		term := field.Mul(field.Mul(num, inv, prime), pi.Y, prime)
		sum = field.Add(sum, term, prime)
	}

	return sum, nil
}
