package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/fumi/format"
	"github.com/dhamidi/fumi/grammar"
)

func newInspectCmd() *cobra.Command {
	var nestLimit int

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse markup and print an indented node tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			nodes := grammar.Parse(input, grammar.WithNestLimit(nestLimit))
			if err := format.NewTreeEncoder(os.Stdout).Encode(nodes); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&nestLimit, "nest-limit", 0, "maximum nesting depth (0 for the default)")

	return cmd
}
