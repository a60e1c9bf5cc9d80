package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bmpkit/pkg/pack"
)

func init() {
	rootCmd.AddCommand(newPackCmd())
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <format> <value>...",
		Short: "Pack values into bytes using a layout string",
		Long: `The pack command encodes values according to a layout string and prints
the resulting bytes as hex. Integers accept 0x, 0o and 0b prefixes.

Example:
  bmpctl pack '>I' 10240099
  bmpctl pack '<ccIIIIIIHH' B M 144056 0 54 40 480 100 1 24`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
	return cmd
}

func runPack(args []string) error {
	format, values := args[0], args[1:]

	b, err := pack.PackStrings(format, values)
	if err != nil {
		return fmt.Errorf("failed to pack: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"format": format,
			"size":   len(b),
			"hex":    hex.EncodeToString(b),
		})
	}

	printInfo("% x\n", b)
	return nil
}
