// Package cli defines the hilo command surface.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thruflo/hilo/internal/game"
	"github.com/thruflo/hilo/internal/logging"
	"github.com/thruflo/hilo/internal/loop"
	"github.com/thruflo/hilo/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootMin     int
	rootVerbose bool
	rootNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "hilo <max>",
	Short: "Guesses your secret number by bisecting a range",
	Long: `HiLo guesses the number you are thinking of. Pick a number between
1 and <max>, answer yes/no questions about where it lies, and the
program converges on it by binary search.

Example:
  hilo 100
  hilo --min 10 100`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("hilo version {{.Version}}\n")
	rootCmd.Flags().IntVar(&rootMin, "min", 1, "lower bound of the candidate range")
	rootCmd.Flags().BoolVar(&rootVerbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "disable ANSI styling")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if rootVerbose {
		logging.SetLevel(logging.LevelDebug)
	}

	// Bad arguments fall back to the usage text without failing the
	// process: the bound comes from a person, not a script.
	if len(args) != 1 {
		return cmd.Usage()
	}
	max, err := strconv.Atoi(args[0])
	if err != nil {
		logging.Debug("argument is not a number", "arg", args[0], "error", err)
		return cmd.Usage()
	}

	tracker, err := game.New(rootMin, max)
	if err != nil {
		logging.Debug("rejected range", "min", rootMin, "max", max, "error", err)
		return cmd.Usage()
	}

	l := loop.New(loop.Options{
		Tracker: tracker,
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		Color:   !rootNoColor && tui.ColorEnabled(cmd.OutOrStdout()),
	})

	result := l.Run(cmd.Context())
	if result.Err != nil {
		return fmt.Errorf("game loop failed: %w", result.Err)
	}
	logging.Debug("loop finished", "reason", result.Reason, "questions", result.Questions)
	return nil
}
