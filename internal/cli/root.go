// Package cli wires the weather model, the hmm engine and the report
// formatting into a cobra command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/internal/logger"
	"github.com/katalvlaran/lvhmm/internal/report"
	"github.com/katalvlaran/lvhmm/internal/weather"
	"github.com/spf13/cobra"
)

type flags struct {
	method    string
	pathLimit int
	logLevel  string
}

// NewRootCmd returns the hmmweather command with evaluate, decode and demo
// subcommands.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "hmmweather",
		Short:         "Score and decode activity logs against the Rainy/Sunny HMM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(cmd.ErrOrStderr(), f.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, f)
		},
	}
	cmd.PersistentFlags().StringVar(&f.method, "method", hmm.DefaultMethod.String(), "solver: enumerate or trellis")
	cmd.PersistentFlags().IntVar(&f.pathLimit, "path-limit", hmm.DefaultPathLimit, "max candidate paths for enumerate (0 = unlimited)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn, error or none")

	cmd.AddCommand(
		newEvaluateCmd(f),
		newDecodeCmd(f),
		&cobra.Command{
			Use:   "demo",
			Short: "Run the built-in example sequences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd, f)
			},
		},
	)

	return cmd
}

func newEvaluateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate SEQ [SEQ...]",
		Short: "Print the probability of each comma-separated activity sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(f)
			if err != nil {
				return err
			}

			return report.Scores[string](cmd.OutOrStdout(), e, parseSequences(args))
		},
	}
}

func newDecodeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode SEQ [SEQ...]",
		Short: "Print the most likely weather for each comma-separated activity sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(f)
			if err != nil {
				return err
			}

			return report.Paths[string, string](cmd.OutOrStdout(), e, parseSequences(args))
		},
	}
}

func runDemo(cmd *cobra.Command, f *flags) error {
	e, err := newEngine(f)
	if err != nil {
		return err
	}
	if err := report.Scores[string](cmd.OutOrStdout(), e, weather.ScoreSequences()); err != nil {
		return err
	}

	return report.Paths[string, string](cmd.OutOrStdout(), e, weather.DecodeSequences())
}

func newEngine(f *flags) (*hmm.Engine[string, string], error) {
	m, err := hmm.ParseMethod(f.method)
	if err != nil {
		return nil, err
	}
	if f.pathLimit < 0 {
		return nil, fmt.Errorf("--path-limit must be >= 0, got %d", f.pathLimit)
	}
	logger.Debug("building weather engine method=%s path-limit=%d", m, f.pathLimit)

	return weather.NewEngine(hmm.WithMethod(m), hmm.WithPathLimit(f.pathLimit))
}

// parseSequences splits "Shop,Clean,Walk" style arguments into sequences.
// An empty argument is the empty sequence.
func parseSequences(args []string) [][]string {
	out := make([][]string, 0, len(args))
	for _, a := range args {
		seq := []string{}
		for _, s := range strings.Split(a, ",") {
			if s = strings.TrimSpace(s); s != "" {
				seq = append(seq, s)
			}
		}
		out = append(out, seq)
	}

	return out
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
