/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	discovery "github.com/allbin/zwave-ports"
)

type validationResult struct {
	Name  string `json:"name" yaml:"name"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <name>...",
	Short: "Check that endpoint names are well formed",
	Long: `Check the shape of endpoint names without touching the system.

Accepted forms are COM<n> (any case) and anything under /dev/. Existence is
not checked: /dev/invalid is well formed. Use "info" to check that an
endpoint is actually present.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]validationResult, 0, len(args))
		invalid := 0
		for _, name := range args {
			ok := discovery.ValidName(name)
			if !ok {
				invalid++
			}
			results = append(results, validationResult{Name: name, Valid: ok})
		}

		out := cmd.OutOrStdout()
		handled, err := writeStructured(out, appConfig.Output, results)
		if err != nil {
			return err
		}
		if !handled {
			for _, r := range results {
				state := "valid"
				if !r.Valid {
					state = "invalid"
				}
				fmt.Fprintf(out, "%s: %s\n", r.Name, state)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d invalid name(s)", invalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
