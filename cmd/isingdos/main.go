// SPDX-License-Identifier: MIT

// Command isingdos prints the exact density of states of an n×n periodic
// Ising lattice, enumerating every spin configuration and reducing by
// spin-reversal symmetry.
//
// Usage:
//
//	isingdos [--side N] [--summary] [--progress=false] [--log-level debug]
//
// Settings come from flags, then ISING_* environment variables (optionally
// from a .env file), then built-in defaults. Sides above 5 are accepted but
// are not practical to enumerate; see package dos.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingdos/dos"
	"github.com/katalvlaran/isingdos/internal/config"
	"github.com/katalvlaran/isingdos/internal/logging"
	"github.com/katalvlaran/isingdos/progress"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8C94"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	envFile   string
	side      int
	progress  bool
	summary   bool
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "isingdos",
		Short: "Exact density of states of a periodic n×n Ising lattice",
		Long: `Enumerate all 2^(n²) spin configurations of an n×n lattice with periodic
boundaries, group each configuration with its spin reversal, and print the
number of configurations at every energy level.

Energy counts equal right and bottom neighbor pairs, so it ranges from 0
(checkerboard, even n) to 2n² (all spins aligned).

Example: isingdos --side 4 --summary`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "Optional dotenv file with ISING_* settings")
	cmd.Flags().IntVar(&f.side, "side", config.DefaultSide, "Lattice side length n")
	cmd.Flags().BoolVar(&f.progress, "progress", true, "Show a progress bar on a terminal")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print energy moments after the density of states")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format: text|json")

	return cmd
}

// resolveConfig loads the environment and applies flags the user set.
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, err
	}
	set := cmd.Flags().Changed
	if set("side") {
		cfg.Side = f.side
	}
	if set("progress") {
		cfg.Progress = f.progress
	}
	if set("summary") {
		cfg.Summary = f.summary
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cfg *config.Config, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level, cfg.LogFormat)
	styled := progress.IsTerminal(stdout)

	status := fmt.Sprintf("Enumerating configurations for a %dx%d lattice using spin reversal symmetry...", cfg.Side, cfg.Side)
	fmt.Fprintln(stdout, render(styled, titleStyle, status))

	var report progress.Reporter = progress.Nop
	finish := func() {}
	if cfg.Progress {
		report, finish = progress.ForWriter(stderr, "Enumerating configurations")
	}
	h, err := dos.Enumerate(cfg.Side, dos.WithProgress(report), dos.WithLogger(logger))
	finish()
	if err != nil {
		return fmt.Errorf("enumerate %dx%d: %w", cfg.Side, cfg.Side, err)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, render(styled, titleStyle, "Density of States (Energy Levels):"))
	if _, err := h.WriteTo(stdout); err != nil {
		return err
	}

	if cfg.Summary {
		writeSummary(stdout, styled, h.Summary(), h.Classes())
	}

	return nil
}

func writeSummary(w io.Writer, styled bool, s dos.Summary, classes int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, render(styled, titleStyle, "Summary:"))
	fmt.Fprintf(w, "Configurations: %s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(w, "Symmetry classes: %s\n", humanize.Comma(int64(classes)))
	fmt.Fprintf(w, "Energy levels: %d (%d..%d)\n", s.Levels, s.MinEnergy, s.MaxEnergy)
	fmt.Fprintf(w, "Mean energy: %.6f\n", s.Mean)
	fmt.Fprintf(w, "Energy variance: %.6f\n", s.Variance)
	fmt.Fprintf(w, "Energy std dev: %.6f\n", s.StdDev)
	fmt.Fprintln(w, render(styled, mutedStyle,
		fmt.Sprintf("Fully aligned configurations: %s", humanize.Comma(int64(s.Degeneracy)))))
}

func render(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}

	return style.Render(s)
}
