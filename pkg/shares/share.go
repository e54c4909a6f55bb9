package shares

import (
	"fmt"
	"math/big"

	"github.com/strangelove-ventures/shardrecover/pkg/radix"
)

// Share is a decoded (x, y) point. Shares are treated as immutable once
// decoded; nothing in this module mutates X or Y after construction.
type Share struct {
	X *big.Int
	Y *big.Int
}

func NewShare(x, y int64) Share {
	return Share{X: big.NewInt(x), Y: big.NewInt(y)}
}

func (s Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

// EncodedShare is the external representation of a share before decoding.
type EncodedShare struct {
	XKey   int64
	Base   int
	Digits string
}

// Decode decodes the share ordinate.
func (e EncodedShare) Decode() (Share, error) {
	return DecodeShare(e.XKey, e.Base, e.Digits)
}

// DecodeShare builds a Share from its index and base-encoded ordinate.
func DecodeShare(xKey int64, base int, digits string) (Share, error) {
	y, err := radix.Decode(digits, base)
	if err != nil {
		return Share{}, fmt.Errorf("share %d: %w", xKey, err)
	}
	return Share{X: big.NewInt(xKey), Y: y}, nil
}

// DecodeAll decodes every share in order, aborting on the first failure.
func DecodeAll(encoded []EncodedShare) ([]Share, error) {
	out := make([]Share, len(encoded))
	for i, e := range encoded {
		s, err := e.Decode()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
