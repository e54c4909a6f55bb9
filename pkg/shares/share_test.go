package shares

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strangelove-ventures/shardrecover/pkg/radix"
	"github.com/stretchr/testify/require"
)

const scenarioA = `{
	"keys": {"n": 4, "k": 3},
	"6": {"base": "4", "value": "213"},
	"1": {"base": "10", "value": "4"},
	"2": {"base": "2", "value": "111"},
	"3": {"base": "10", "value": "12"}
}`

func TestDecodeShare(t *testing.T) {
	s, err := DecodeShare(2, 2, "111")
	require.NoError(t, err)
	require.Equal(t, "(2, 7)", s.String())

	_, err = DecodeShare(2, 2, "2")
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
	require.EqualError(t, err, "share 2: invalid digit '2' for base 2")
}

func TestParseShareSet(t *testing.T) {
	set, err := ParseShareSet([]byte(scenarioA))
	require.NoError(t, err)
	require.Equal(t, Keys{N: 4, K: 3}, set.Keys)
	require.Equal(t, []EncodedShare{
		{XKey: 1, Base: 10, Digits: "4"},
		{XKey: 2, Base: 2, Digits: "111"},
		{XKey: 3, Base: 10, Digits: "12"},
		{XKey: 6, Base: 4, Digits: "213"},
	}, set.Encoded)

	decoded, err := set.Decode()
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	want := []Share{NewShare(1, 4), NewShare(2, 7), NewShare(3, 12), NewShare(6, 39)}
	for i := range want {
		require.Equal(t, want[i].String(), decoded[i].String())
	}
}

func TestParseShareSetNumericOrder(t *testing.T) {
	set, err := ParseShareSet([]byte(`{
		"keys": {"n": 3, "k": 2},
		"10": {"base": "10", "value": "1"},
		"9": {"base": "10", "value": "1"},
		"2": {"base": "10", "value": "1"}
	}`))
	require.NoError(t, err)

	var keys []int64
	for _, e := range set.Encoded {
		keys = append(keys, e.XKey)
	}
	require.Equal(t, []int64{2, 9, 10}, keys)
}

func TestParseShareSetErrors(t *testing.T) {
	tcs := []struct {
		name string
		doc  string
		err  error
	}{
		{name: "not json", doc: `{`},
		{name: "missing keys", doc: `{"1": {"base": "10", "value": "4"}}`, err: ErrMissingKeys},
		{name: "bad keys", doc: `{"keys": {"n": "four", "k": 3}}`},
		{name: "non numeric share key", doc: `{"keys": {"n": 1, "k": 1}, "x": {"base": "10", "value": "4"}}`, err: ErrInvalidShareKey},
		{name: "non numeric base", doc: `{"keys": {"n": 1, "k": 1}, "1": {"base": "ten", "value": "4"}}`},
		{name: "share not an object", doc: `{"keys": {"n": 1, "k": 1}, "1": "4"}`},
		{name: "leading zero repeats index", doc: `{"keys": {"n": 2, "k": 1}, "1": {"base": "10", "value": "5"}, "01": {"base": "10", "value": "9"}}`, err: ErrDuplicateShareKey},
		{name: "plus sign repeats index", doc: `{"keys": {"n": 2, "k": 1}, "+2": {"base": "10", "value": "5"}, "2": {"base": "10", "value": "9"}}`, err: ErrDuplicateShareKey},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseShareSet([]byte(tc.doc))
			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestParseShareSetDuplicateIndexIsReproducible(t *testing.T) {
	doc := []byte(`{
		"keys": {"n": 3, "k": 1},
		"1": {"base": "10", "value": "5"},
		"01": {"base": "10", "value": "9"},
		"001": {"base": "10", "value": "7"}
	}`)

	for i := 0; i < 50; i++ {
		_, err := ParseShareSet(doc)
		require.ErrorIs(t, err, ErrDuplicateShareKey)
		require.EqualError(t, err, `duplicate share index 1: keys "001" and "01"`)
	}
}

func TestShareSetDecodeAbortsOnInvalidDigit(t *testing.T) {
	set, err := ParseShareSet([]byte(`{
		"keys": {"n": 2, "k": 2},
		"1": {"base": "10", "value": "4"},
		"2": {"base": "2", "value": "2"}
	}`))
	require.NoError(t, err)

	_, err = set.Decode()
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
}

func TestReadShareSetFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "testcase1.json")
	require.NoError(t, os.WriteFile(file, []byte(scenarioA), 0600))

	set, err := ReadShareSetFile(file)
	require.NoError(t, err)
	require.Len(t, set.Encoded, 4)

	_, err = ReadShareSetFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
