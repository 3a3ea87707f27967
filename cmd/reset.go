/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	discovery "github.com/allbin/zwave-ports"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <port|serial>",
	Short: "Reset a USB serial device",
	Long: `Perform a USB-level reset on a serial device. This can recover a Z-Wave
stick that is hung or unresponsive without physically unplugging it.

The device will re-enumerate after reset, which may cause the port path
to change (e.g., /dev/ttyACM0 might become /dev/ttyACM1). Use serial
numbers to reliably identify devices after reset.

Requirements:
- usbreset utility (usbutils package), or Linux USBDEVFS_RESET support
- Root/sudo permissions required for USB operations

Examples:
  sudo zwports reset /dev/ttyACM0          # Reset by port path
  sudo zwports reset --serial NC7ILXW1     # Reset by serial number`,
	Args: func(cmd *cobra.Command, args []string) error {
		serialFlag, _ := cmd.Flags().GetString("serial")
		if serialFlag == "" && len(args) != 1 {
			return errors.New("requires either a port path argument or --serial flag")
		}
		if serialFlag != "" && len(args) > 0 {
			return errors.New("cannot specify both port path and --serial flag")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		serialFlag, _ := cmd.Flags().GetString("serial")

		if serialFlag != "" {
			fmt.Fprintf(out, "Resetting USB device with serial: %s\n", serialFlag)
			err = scanner.ResetBySerial(serialFlag)
		} else {
			fmt.Fprintf(out, "Resetting USB device: %s\n", args[0])
			err = scanner.Reset(args[0])
		}

		if err != nil {
			if errors.Is(err, discovery.ErrUSBInfoNotAvailable) {
				return fmt.Errorf("%w: this device does not appear to be a USB device", err)
			}
			return err
		}

		fmt.Fprintln(out, "USB device reset successfully")
		fmt.Fprintln(out, "Device will re-enumerate (port path may change)")
		fmt.Fprintln(out, "\nUse 'zwports list --table' to see updated device list")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringP("serial", "s", "", "Reset device by serial number")
}
