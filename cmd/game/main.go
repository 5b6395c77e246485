// dodgeball is a side-scrolling platformer: cross each level to its exit
// door while drones shoot at you, holding up a shield that burns energy.
//
// Usage:
//
//	dodgeball play              - Play the campaign
//	dodgeball replay <file>     - Re-run a recording headless and report the outcome
//	dodgeball levels            - List the campaign's levels
//
// Global flags:
//
//	--configs <dir>  - Load configs from a directory instead of the embedded defaults
//	--seed <value>   - Set RNG seed for reproducible runs (0 = time based)
//	--verbose        - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigs string
	flagSeed    int64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("dodgeball failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodgeball",
	Short: "Dodgeball - a shield-and-run platformer",
	Long: `Dodgeball is a side-scrolling platformer. Reach the exit door of each
level while drones fire at you. Your shield stops damage but drains energy;
run out of energy and it starts eating your health.

Available commands:
  play     - Play the campaign
  replay   - Re-run a recorded session headless
  levels   - List the campaign's levels

Examples:
  dodgeball play
  dodgeball play --level level2 --record
  dodgeball play --configs ./cmd/game/configs --watch
  dodgeball replay replay_level1_20250101_120000.json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setupLogger,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigs, "configs", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setupLogger(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodgeball",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}
