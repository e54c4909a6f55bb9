package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	cometlog "github.com/cometbft/cometbft/libs/log"
	cometos "github.com/cometbft/cometbft/libs/os"
	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/shardrecover/pkg/metrics"
	"github.com/strangelove-ventures/shardrecover/pkg/radix"
	"github.com/strangelove-ventures/shardrecover/pkg/recovery"
	"github.com/strangelove-ventures/shardrecover/pkg/shares"
)

const (
	flagThreshold       = "threshold"
	flagWorkers         = "workers"
	flagPrime           = "prime"
	flagMaxCombinations = "max-combinations"
	flagTimeout         = "timeout"
	flagOutput          = "output"

	outputText = "text"
	outputJSON = "json"
)

type shareOutput struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type solveOutput struct {
	File              string        `json:"file"`
	Secret            string        `json:"secret"`
	Confidence        int           `json:"confidence"`
	TotalCombinations int           `json:"total_combinations"`
	Skipped           int           `json:"skipped,omitempty"`
	Combination       []shareOutput `json:"combination"`
	Outliers          []shareOutput `json:"outliers,omitempty"`
}

func toShareOutputs(in []shares.Share) []shareOutput {
	if len(in) == 0 {
		return nil
	}
	out := make([]shareOutput, len(in))
	for i, s := range in {
		out[i] = shareOutput{X: s.X.String(), Y: s.Y.String()}
	}
	return out
}

func newSolveOutput(file string, res *recovery.Result) solveOutput {
	return solveOutput{
		File:              file,
		Secret:            res.Secret.String(),
		Confidence:        res.Confidence,
		TotalCombinations: res.TotalCombinations,
		Skipped:           res.Skipped,
		Combination:       toShareOutputs(res.Combination),
		Outliers:          toShareOutputs(res.Outliers),
	}
}

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solve [share-set.json...]",
		Aliases: []string{"s"},
		Short:   "Reconstruct the secret of each share set file",
		Long: "Reconstruct the secret of each share set file.\n\n" +
			"A share set file is a JSON object with a \"keys\" entry {\"n\": ..., \"k\": ...}\n" +
			"and one entry per share keyed by its decimal index, i.e.\n" +
			"{\"keys\": {\"n\": 4, \"k\": 3}, \"1\": {\"base\": \"10\", \"value\": \"4\"}, ...}",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			if flags.Changed(flagWorkers) {
				config.Config.Workers, _ = flags.GetInt(flagWorkers)
			}
			if flags.Changed(flagPrime) {
				config.Config.Prime, _ = flags.GetString(flagPrime)
			}
			if flags.Changed(flagMaxCombinations) {
				config.Config.MaxCombinations, _ = flags.GetInt64(flagMaxCombinations)
			}
			if err := config.Config.Validate(); err != nil {
				return err
			}

			threshold, _ := flags.GetInt(flagThreshold)
			if threshold < 0 {
				return fmt.Errorf("threshold flag must not be negative, got %d", threshold)
			}

			output, _ := flags.GetString(flagOutput)
			if output != outputText && output != outputJSON {
				return fmt.Errorf("output must be %q or %q, got %q", outputText, outputJSON, output)
			}

			timeout, _ := flags.GetDuration(flagTimeout)

			for _, file := range args {
				if !cometos.FileExists(file) {
					return fmt.Errorf("share set file(%s) doesn't exist", file)
				}
			}

			// silence usage after all input has been validated
			cmd.SilenceUsage = true

			logger, err := config.Config.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = logger.With("module", "solve")

			solverCfg, err := config.Config.SolverConfig()
			if err != nil {
				return err
			}
			solver := recovery.NewSolver(logger, solverCfg)

			if config.Config.DebugAddr != "" {
				srv := metrics.NewServer(logger.With("module", "metrics"), config.Config.DebugAddr)
				if err := srv.Start(); err != nil {
					return fmt.Errorf("failed to start metrics server: %w", err)
				}
				defer func() {
					_ = srv.Stop()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var outputs []solveOutput
			failed := 0
			for _, file := range args {
				res, err := solveFile(ctx, logger, solver, file, threshold, timeout)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
					if errors.Is(err, context.Canceled) {
						break
					}
					continue
				}
				if output == outputJSON {
					outputs = append(outputs, newSolveOutput(file, res))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Secret for %s: %s\n", file, res.Secret)
			}

			if output == outputJSON {
				if err := writeJSON(cmd.OutOrStdout(), outputs); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("failed to solve %d of %d share set(s)", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntP(flagThreshold, "k", 0, "override the threshold k of every share set (0 uses the file's keys.k)")
	cmd.Flags().IntP(flagWorkers, "w", 1, "number of parallel search workers (overrides config)")
	cmd.Flags().String(flagPrime, "", "decimal prime modulus of the field (overrides config)")
	cmd.Flags().Int64(flagMaxCombinations, 0, "refuse share sets with more combinations than this, 0 for no limit")
	cmd.Flags().Duration(flagTimeout, 0, "abandon a share set after this duration, 0 for no timeout \n"+
		"accepts valid duration strings for Go's time.ParseDuration() e.g. 1s, 1000ms, 1.5m")
	cmd.Flags().StringP(flagOutput, "o", outputText, "output format: text or json")
	return cmd
}

func solveFile(
	ctx context.Context,
	logger cometlog.Logger,
	solver *recovery.Solver,
	file string,
	threshold int,
	timeout time.Duration,
) (*recovery.Result, error) {
	set, err := shares.ReadShareSetFile(file)
	if err != nil {
		return nil, err
	}

	points, err := set.Decode()
	if err != nil {
		if errors.Is(err, radix.ErrInvalidDigit) {
			metrics.TotalInvalidDigits.Inc()
		}
		return nil, err
	}

	k := set.Keys.K
	if threshold > 0 {
		k = threshold
	}
	if set.Keys.N != len(points) {
		logger.Info("Share count differs from keys.n", "file", file, "n", set.Keys.N, "shares", len(points))
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Debug("Solving share set", "file", file, "shares", len(points), "threshold", k,
		"combinations", recovery.Binomial(len(points), k).String())

	return solver.Reconstruct(ctx, points, k)
}

func writeJSON(out io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(bz))
	return err
}

// bigFromArg parses a decimal command argument.
func bigFromArg(name, arg string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(arg, 10)
	if !ok {
		return nil, fmt.Errorf("%s must be a decimal integer, got(%s)", name, arg)
	}
	return v, nil
}
