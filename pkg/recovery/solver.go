// Package recovery reconstructs a secret from a share set that may contain
// corrupted shares by interpolating every threshold-sized subset and voting
// on the constant term.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	gometrics "github.com/armon/go-metrics"
	"github.com/cometbft/cometbft/libs/log"
	"golang.org/x/sync/errgroup"

	"github.com/strangelove-ventures/shardrecover/pkg/field"
	"github.com/strangelove-ventures/shardrecover/pkg/lagrange"
	"github.com/strangelove-ventures/shardrecover/pkg/metrics"
	"github.com/strangelove-ventures/shardrecover/pkg/shares"
)

var (
	ErrNoConsensus         = errors.New("no valid constant term found from any combination")
	ErrInvalidThreshold    = errors.New("threshold must be at least 1")
	ErrTooManyCombinations = errors.New("combination count exceeds configured maximum")
)

// SolverConfig tunes a Solver. The zero value searches sequentially over the
// default prime with no bound on the number of combinations.
type SolverConfig struct {
	Prime           *big.Int
	Workers         int
	MaxCombinations int64
}

type Solver struct {
	logger          log.Logger
	prime           *big.Int
	workers         int
	maxCombinations int64
}

// Result is the outcome of a reconstruction.
type Result struct {
	Secret            *big.Int
	Combination       []shares.Share
	Confidence        int
	TotalCombinations int
	Skipped           int

	// Outliers are the supplied shares that do not lie on the polynomial
	// through Combination.
	Outliers []shares.Share
}

// Outcome is the result of interpolating one combination. Err is set when
// the combination was skipped.
type Outcome struct {
	Value *big.Int
	Err   error
}

func (o Outcome) OK() bool { return o.Err == nil }

func NewSolver(logger log.Logger, cfg SolverConfig) *Solver {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	prime := cfg.Prime
	if prime == nil {
		prime = field.DefaultPrime()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Solver{
		logger:          logger,
		prime:           new(big.Int).Set(prime),
		workers:         workers,
		maxCombinations: cfg.MaxCombinations,
	}
}

// FindSecret reconstructs with a sequential solver over the default prime.
func FindSecret(points []shares.Share, k int) (*Result, error) {
	return NewSolver(nil, SolverConfig{}).Reconstruct(context.Background(), points, k)
}

func (s *Solver) Prime() *big.Int {
	return new(big.Int).Set(s.prime)
}

// Interpolate evaluates a single combination.
func (s *Solver) Interpolate(subset []shares.Share) Outcome {
	v, err := lagrange.InterpolateAtZero(subset, s.prime)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Value: v}
}

// Reconstruct interpolates every size-k subset of points, in order, and
// returns the constant term produced by the most subsets. Ties go to the
// value whose first supporting subset comes earliest.
func (s *Solver) Reconstruct(ctx context.Context, points []shares.Share, k int) (*Result, error) {
	start := time.Now()
	defer gometrics.MeasureSince([]string{"recovery", "reconstruct"}, start)

	if k < 1 {
		metrics.TotalReconstructions.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, fmt.Errorf("%w, got %d", ErrInvalidThreshold, k)
	}

	total := Binomial(len(points), k)
	if s.maxCombinations > 0 && total.Cmp(big.NewInt(s.maxCombinations)) > 0 {
		metrics.TotalReconstructions.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, fmt.Errorf("%w: C(%d, %d) = %s > %d",
			ErrTooManyCombinations, len(points), k, total, s.maxCombinations)
	}

	s.warnDuplicateIndices(points)

	partials := make([]*tally, s.workers)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < s.workers; w++ {
		w := w
		eg.Go(func() error {
			t, err := s.search(egCtx, points, k, w)
			partials[w] = t
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		metrics.TotalReconstructions.WithLabelValues(metrics.ResultCanceled).Inc()
		return nil, err
	}

	merged := newTally()
	for _, p := range partials {
		merged.merge(p)
	}

	metrics.TotalCombinationsEvaluated.Add(float64(merged.evaluated))
	metrics.TotalCombinationsSkipped.Add(float64(merged.skipped))
	metrics.TimedReconstructLag.Observe(time.Since(start).Seconds())

	winner := merged.winner()
	if winner == nil {
		metrics.TotalReconstructions.WithLabelValues(metrics.ResultNoConsensus).Inc()
		s.logger.Error("No consensus", "shares", len(points), "threshold", k,
			"combinations", merged.evaluated, "skipped", merged.skipped)
		return nil, ErrNoConsensus
	}

	res := &Result{
		Secret:            winner.value,
		Combination:       winner.subset,
		Confidence:        winner.count,
		TotalCombinations: int(merged.evaluated),
		Skipped:           int(merged.skipped),
		Outliers:          s.outliers(points, winner.subset),
	}

	metrics.TotalReconstructions.WithLabelValues(metrics.ResultSolved).Inc()
	metrics.LastConfidence.Set(float64(res.Confidence))
	metrics.LastOutliers.Set(float64(len(res.Outliers)))

	s.logger.Info(
		"Reconstructed secret",
		"confidence", res.Confidence,
		"combinations", res.TotalCombinations,
		"outliers", len(res.Outliers),
	)

	return res, nil
}

// search handles the combination ordinals assigned to worker w.
func (s *Solver) search(ctx context.Context, points []shares.Share, k, w int) (*tally, error) {
	t := newTally()
	subset := make([]shares.Share, k)

	combos := NewCombinations(len(points), k)
	for ord := int64(0); combos.Next(); ord++ {
		if ord%int64(s.workers) != int64(w) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for i, idx := range combos.Indices() {
			subset[i] = points[idx]
		}

		out := s.Interpolate(subset)
		if !out.OK() {
			s.logger.Debug("Skipping combination", "ordinal", ord, "err", out.Err)
			t.skip()
			continue
		}
		t.add(out.Value, ord, subset)
	}
	return t, nil
}

func (s *Solver) outliers(points, winning []shares.Share) []shares.Share {
	var out []shares.Share
	for _, p := range points {
		y, err := lagrange.InterpolateAt(winning, p.X, s.prime)
		if err != nil || y.Cmp(field.Reduce(p.Y, s.prime)) != 0 {
			out = append(out, p)
		}
	}
	return out
}

func (s *Solver) warnDuplicateIndices(points []shares.Share) {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		key := field.Reduce(p.X, s.prime).String()
		if _, ok := seen[key]; ok {
			s.logger.Info("Duplicate share index, affected terms will be skipped", "x", p.X.String())
			continue
		}
		seen[key] = struct{}{}
	}
}
