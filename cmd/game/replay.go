package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/dodgeball/internal/application/replay"
	"github.com/younwookim/dodgeball/internal/application/system"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session headless",
	Long: `Load a replay file written by 'dodgeball play --record', re-simulate
the level with the recorded seed, inputs and frame times, and print how the
run ended. Use the same --configs the recording was made with.

Examples:
  dodgeball replay replay_level1_20250101_120000.json
  dodgeball replay --configs ./cmd/game/configs run.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.OutOrStdout(), flagConfigs, args[0])
	},
}

func runReplay(w io.Writer, configs, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	_, cfg, levels, err := loadGame(configs)
	if err != nil {
		return err
	}
	i, err := findLevel(levels, data.Level)
	if err != nil {
		return fmt.Errorf("replay %s: %w", filename, err)
	}

	log.Debug("replaying", "file", filename, "level", data.Level, "seed", data.Seed, "frames", len(data.Frames))

	res, err := replay.Run(data, cfg.LevelTuning(data.Level), levels[i])
	if err != nil {
		return err
	}

	printResult(w, data, res)
	return nil
}

func printResult(w io.Writer, data *replay.ReplayData, res replay.Result) {
	fmt.Fprintf(w, "level:   %s\n", data.Level)
	fmt.Fprintf(w, "seed:    %d\n", data.Seed)
	fmt.Fprintf(w, "ticks:   %d of %d recorded\n", res.Ticks, len(data.Frames))
	fmt.Fprintf(w, "outcome: %s", res.Outcome)
	if res.Outcome == system.OutcomeGameOver {
		fmt.Fprintf(w, " (%s)", res.Cause)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "health:  %.1f\n", res.Health)
	fmt.Fprintf(w, "energy:  %.1f\n", res.Energy)

	cues := make([]string, 0, len(res.Cues))
	for cue := range res.Cues {
		cues = append(cues, string(cue))
	}
	sort.Strings(cues)
	for _, cue := range cues {
		fmt.Fprintf(w, "sound %-10s %d\n", cue+":", res.Cues[system.Cue(cue)])
	}
}
