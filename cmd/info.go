/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	discovery "github.com/allbin/zwave-ports"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display detailed information about a serial endpoint",
	Long: `Display detailed information about a serial endpoint including USB metadata.

Examples:
  zwports info /dev/ttyACM0
  zwports info COM3

For USB devices, this displays vendor/product IDs, manufacturer, serial number
and bus address. On Linux these come from sysfs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !discovery.ValidName(name) {
			return fmt.Errorf("invalid endpoint name %q: expected COM<n> or /dev/<device>", name)
		}

		scanner, err := newScanner()
		if err != nil {
			return err
		}

		ep, ok := scanner.Describe(name)
		if !ok {
			return fmt.Errorf("%s: %w", name, discovery.ErrEndpointNotFound)
		}

		out := cmd.OutOrStdout()
		if handled, err := writeStructured(out, appConfig.Output, ep); handled {
			return err
		}

		fmt.Fprintf(out, "Port Information: %s\n\n", ep.Name)
		fmt.Fprintf(out, "  Description: %s\n", ep.Description)
		fmt.Fprintf(out, "  Class:       %s\n", ep.Class())
		if scanner.Accessible(ep.Name) {
			fmt.Fprintln(out, "  Access:      read/write")
		} else {
			fmt.Fprintln(out, "  Access:      permission denied (check group membership, e.g. dialout)")
		}

		// USB Device Information
		if ep.IsUSB() {
			fmt.Fprintln(out, "\nUSB Device Information:")
			fmt.Fprintf(out, "  Vendor ID:    %s\n", ep.VendorID)
			fmt.Fprintf(out, "  Product ID:   %s\n", ep.ProductID)
			if ep.Manufacturer != "" {
				fmt.Fprintf(out, "  Manufacturer: %s\n", ep.Manufacturer)
			}
			if ep.SerialNumber != "" {
				fmt.Fprintf(out, "  Serial:       %s\n", ep.SerialNumber)
			}
			if ep.BusNumber != "" {
				fmt.Fprintf(out, "  Bus:          %s\n", ep.BusNumber)
			}
			if ep.DeviceNumber != "" {
				fmt.Fprintf(out, "  Device:       %s\n", ep.DeviceNumber)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
