package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign's levels",
	Long:  `Shows every level of the campaign in play order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLevels(cmd.OutOrStdout(), flagConfigs)
	},
}

func runLevels(w io.Writer, configs string) error {
	_, cfg, levels, err := loadGame(configs)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n\n", cfg.Campaign.Title)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-11s  %-6s  %-6s  %s\n", maxNameLen, "Name", "World", "Drones", "Fall", "Title")
	fmt.Fprintf(w, "  %-*s  %-11s  %-6s  %-6s  %s\n", maxNameLen, "----", "-----", "------", "----", "-----")

	// Print levels
	for _, l := range levels {
		world := fmt.Sprintf("%.0fx%.0f", l.Width, l.Height)
		fmt.Fprintf(w, "  %-*s  %-11s  %-6d  %-6s  %s\n", maxNameLen, l.Name, world, len(l.Drones), l.FallPolicy, l.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dodgeball play --level <name>' to jump straight in.")
	return nil
}
