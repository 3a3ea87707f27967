/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/allbin/zwave-ports/internal/tui/models"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse serial endpoints",
	Long: `Open a full-screen view of the serial endpoints on this system.

The list refreshes on the watch interval. Select an endpoint to see its USB
metadata and whether the current user can open it.

Keys:
  ↑/↓   move selection
  r     rescan now
  u     toggle USB-only view
  ?     toggle help
  q     quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner()
		if err != nil {
			return err
		}

		p := tea.NewProgram(models.NewBrowseModel(scanner, appConfig.Watch.Interval), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
