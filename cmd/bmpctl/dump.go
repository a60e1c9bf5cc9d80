package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bmpkit/pkg/bmp"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump the 30-byte header prefix of a bitmap",
		Long: `The dump command prints the raw header prefix of a bitmap file as hex.

Example:
  bmpctl dump test.bmp
  bmpctl dump test.bmp --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	printVerbose("Reading header: %s\n", path)

	hdr, err := bmp.ReadFile(path, bmp.Options{Strict: strict})
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	raw, err := hdr.MarshalBinary()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{
			"file": path,
			"hex":  hex.EncodeToString(raw),
		})
	}

	printInfo("%s", hex.Dump(raw))
	return nil
}
