package radix

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tcs := []struct {
		name   string
		digits string
		base   int
		want   string
	}{
		{name: "decimal", digits: "4", base: 10, want: "4"},
		{name: "binary", digits: "111", base: 2, want: "7"},
		{name: "base 4", digits: "213", base: 4, want: "39"},
		{name: "hex mixed case", digits: "aAfF", base: 16, want: "43775"},
		{name: "base 36", digits: "zz", base: 36, want: "1295"},
		{name: "leading zeros", digits: "0007", base: 8, want: "7"},
		{name: "empty", digits: "", base: 10, want: "0"},
		{
			name:   "beyond 64 bits",
			digits: "e1b5e4623b1fcc7b5a2b0a7d80b6c3e",
			base:   16,
			want:   "",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.digits, tc.base)
			require.NoError(t, err)
			if tc.want == "" {
				want, ok := new(big.Int).SetString(tc.digits, tc.base)
				require.True(t, ok)
				require.Equal(t, 0, want.Cmp(got))
				return
			}
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestDecodeInvalidDigit(t *testing.T) {
	tcs := []struct {
		name   string
		digits string
		base   int
		char   rune
	}{
		{name: "digit equal to base", digits: "2", base: 2, char: '2'},
		{name: "letter in decimal", digits: "12a", base: 10, char: 'a'},
		{name: "outside alphabet", digits: "1-1", base: 16, char: '-'},
		{name: "whitespace", digits: "1 0", base: 10, char: ' '},
		{name: "uppercase too large", digits: "G", base: 16, char: 'G'},
		{name: "kelvin sign", digits: "\u212a", base: 36, char: '\u212a'},
		{name: "fullwidth digit", digits: "1\uff11", base: 10, char: '\uff11'},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.digits, tc.base)
			require.ErrorIs(t, err, ErrInvalidDigit)

			var digitErr *InvalidDigitError
			require.ErrorAs(t, err, &digitErr)
			require.Equal(t, tc.char, digitErr.Char)
			require.Equal(t, tc.base, digitErr.Base)
		})
	}
}

func TestInvalidBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 62} {
		_, err := Decode("1", base)
		require.ErrorIs(t, err, ErrInvalidBase)

		_, err = Encode(big.NewInt(1), base)
		require.ErrorIs(t, err, ErrInvalidBase)
	}
}

func TestEncodeNegative(t *testing.T) {
	_, err := Encode(big.NewInt(-1), 10)
	require.ErrorIs(t, err, ErrNegative)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	limit := new(big.Int).Lsh(big.NewInt(1), 300)

	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(35), big.NewInt(36)}
	for i := 0; i < 20; i++ {
		values = append(values, new(big.Int).Rand(rng, limit))
	}

	for base := MinBase; base <= MaxBase; base++ {
		for _, v := range values {
			s, err := Encode(v, base)
			require.NoError(t, err)

			got, err := Decode(s, base)
			require.NoError(t, err)
			require.Equal(t, 0, v.Cmp(got), "base %d value %s", base, v)
		}
	}
}
