/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	discovery "github.com/allbin/zwave-ports"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial endpoints",
	Long: `List all serial endpoints on the system a Z-Wave controller may be attached to.

On Linux this scans /dev for communication-capable serial devices:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*), the usual class of Z-Wave sticks
- Standard serial ports (ttyS*)
- ARM/Raspberry Pi ports (ttyAMA*)
- And other platform-specific serial devices

plus any tty in /sys/class/tty that hangs off a USB bus. Virtual terminals and
pseudo-terminals are excluded from the listing. Other platforms use the
operating system's serial port registry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner()
		if err != nil {
			return err
		}

		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		endpoints := discovery.Filter(scanner.List(), filterType)

		out := cmd.OutOrStdout()
		if handled, err := writeStructured(out, appConfig.Output, endpoints); handled {
			return err
		}

		if len(endpoints) == 0 {
			if filterType != "" && filterType != discovery.ClassAll {
				fmt.Fprintf(out, "No serial ports found matching filter: %s\n", filterType)
			} else {
				fmt.Fprintln(out, "No serial ports found")
			}
			return nil
		}

		if tableFormat {
			renderTable(out, endpoints)
		} else {
			renderSimple(out, endpoints)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Filter by endpoint class: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// renderTable renders the endpoint list in a styled static table format
func renderTable(w io.Writer, endpoints []discovery.Endpoint) {
	fmt.Fprintf(w, "Found %d serial port(s):\n\n", len(endpoints))

	// Define column widths
	portWidth := 15
	typeWidth := 10
	idWidth := 10
	descWidth := 40

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240"))

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		portWidth, "Port",
		typeWidth, "Class",
		idWidth, "VID:PID",
		descWidth, "Description")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, ep := range endpoints {
		ids := "-"
		if ep.IsUSB() {
			ids = ep.VendorID + ":" + ep.ProductID
		}
		row := fmt.Sprintf("%-*s %-*s %-*s %-*s",
			portWidth, ep.Name,
			typeWidth, ep.Class(),
			idWidth, ids,
			descWidth, ep.Description)
		fmt.Fprintln(w, cellStyle.Render(row))
	}
}

// renderSimple renders the endpoint list in simple text format
func renderSimple(w io.Writer, endpoints []discovery.Endpoint) {
	for _, ep := range endpoints {
		fmt.Fprintln(w, ep.DisplayName())
	}
}
