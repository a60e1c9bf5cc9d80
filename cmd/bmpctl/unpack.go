package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bmpkit/pkg/pack"
)

func init() {
	rootCmd.AddCommand(newUnpackCmd())
}

func newUnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <format> <hex>...",
		Short: "Unpack hex bytes into values using a layout string",
		Long: `The unpack command decodes hex bytes according to a layout string.
Hex may be split across several arguments and may contain spaces.

Example:
  bmpctl unpack '>IH' f0f0f0f08080
  bmpctl unpack '<ccIIIIIIHH' 42 4D B8 32 02 00 00 00 00 00 36 00 00 00 28 00 00 00 E0 01 00 00 64 00 00 00 01 00 18 00`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(args)
		},
	}
	return cmd
}

func runUnpack(args []string) error {
	format := args[0]
	digits := strings.Join(strings.Fields(strings.Join(args[1:], " ")), "")

	data, err := hex.DecodeString(digits)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	vals, err := pack.Unpack(format, data)
	if err != nil {
		return fmt.Errorf("failed to unpack: %w", err)
	}

	if jsonOut {
		// Byte strings print as text rather than base64.
		out := make([]any, len(vals))
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				out[i] = string(b)
				continue
			}
			out[i] = v
		}
		return printJSON(out)
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		if b, ok := v.([]byte); ok {
			parts[i] = fmt.Sprintf("%q", b)
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	printInfo("(%s)\n", strings.Join(parts, ", "))
	return nil
}
