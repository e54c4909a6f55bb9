package shares

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
)

const keysField = "keys"

var (
	ErrMissingKeys       = errors.New("share set is missing the \"keys\" object")
	ErrInvalidShareKey   = errors.New("share key must be a decimal integer")
	ErrDuplicateShareKey = errors.New("duplicate share index")
)

// Keys holds the threshold parameters of a share set document.
type Keys struct {
	N int `json:"n"`
	K int `json:"k"`
}

type encodedRoot struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// ShareSet is a parsed share set document:
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// Encoded is ordered by ascending share index.
type ShareSet struct {
	Keys    Keys
	Encoded []EncodedShare
}

// ParseShareSet parses a share set document without decoding the ordinates.
// Keys naming the same index, such as "1" and "01", are rejected.
func ParseShareSet(bz []byte) (*ShareSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bz, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal share set: %w", err)
	}

	keysRaw, ok := raw[keysField]
	if !ok {
		return nil, ErrMissingKeys
	}

	var out ShareSet
	if err := json.Unmarshal(keysRaw, &out.Keys); err != nil {
		return nil, fmt.Errorf("failed to parse %q object: %w", keysField, err)
	}

	// sorted so the reported error does not depend on map order
	keys := make([]string, 0, len(raw))
	for key := range raw {
		if key != keysField {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	seen := make(map[int64]string, len(keys))
	for _, key := range keys {
		x, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w, got %q", ErrInvalidShareKey, key)
		}
		if prev, ok := seen[x]; ok {
			return nil, fmt.Errorf("%w %d: keys %q and %q", ErrDuplicateShareKey, x, prev, key)
		}
		seen[x] = key

		var root encodedRoot
		if err := json.Unmarshal(raw[key], &root); err != nil {
			return nil, fmt.Errorf("failed to parse share %q: %w", key, err)
		}

		base, err := strconv.Atoi(root.Base)
		if err != nil {
			return nil, fmt.Errorf("invalid base %q for share %q", root.Base, key)
		}

		out.Encoded = append(out.Encoded, EncodedShare{XKey: x, Base: base, Digits: root.Value})
	}

	sort.Slice(out.Encoded, func(i, j int) bool {
		return out.Encoded[i].XKey < out.Encoded[j].XKey
	})

	return &out, nil
}

// ReadShareSetFile reads and parses a share set document from disk.
func ReadShareSetFile(file string) (*ShareSet, error) {
	bz, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseShareSet(bz)
}

// Decode decodes every share of the set.
func (s *ShareSet) Decode() ([]Share, error) {
	return DecodeAll(s.Encoded)
}
