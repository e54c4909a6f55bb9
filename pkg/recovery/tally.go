package recovery

import (
	"math/big"

	"github.com/strangelove-ventures/shardrecover/pkg/shares"
)

type vote struct {
	value *big.Int
	count int

	// first orders ties, last selects the representative subset.
	first, last int64
	subset      []shares.Share
}

// tally counts constant terms keyed by their canonical big-endian bytes.
// Values are always reduced into [0, prime), so equal integers share a key.
type tally struct {
	votes     map[string]*vote
	evaluated int64
	skipped   int64
}

func newTally() *tally {
	return &tally{votes: make(map[string]*vote)}
}

func (t *tally) skip() {
	t.evaluated++
	t.skipped++
}

func (t *tally) add(value *big.Int, ord int64, subset []shares.Share) {
	t.evaluated++

	key := string(value.Bytes())
	v, ok := t.votes[key]
	if !ok {
		v = &vote{value: value, first: ord}
		t.votes[key] = v
	}
	v.count++
	v.last = ord
	v.subset = append(v.subset[:0], subset...)
}

func (t *tally) merge(o *tally) {
	if o == nil {
		return
	}
	t.evaluated += o.evaluated
	t.skipped += o.skipped

	for key, ov := range o.votes {
		v, ok := t.votes[key]
		if !ok {
			cp := *ov
			t.votes[key] = &cp
			continue
		}
		v.count += ov.count
		if ov.first < v.first {
			v.first = ov.first
		}
		if ov.last > v.last {
			v.last = ov.last
			v.subset = ov.subset
		}
	}
}

// winner returns the vote with the strictly highest count, the earliest
// first ordinal breaking ties, or nil when nothing was tallied.
func (t *tally) winner() *vote {
	var best *vote
	for _, v := range t.votes {
		if best == nil || v.count > best.count || (v.count == best.count && v.first < best.first) {
			best = v
		}
	}
	return best
}
