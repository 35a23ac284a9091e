package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/fumi/ast"
	"github.com/dhamidi/fumi/format"
	"github.com/dhamidi/fumi/grammar"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var simple bool
	var nestLimit int
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse markup from a file or stdin and dump the syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			opts := []grammar.Option{grammar.WithNestLimit(nestLimit)}
			if trace {
				commonlog.Configure(2, nil)
				opts = append(opts, grammar.WithTrace(commonlog.GetLogger("fumi.parser")))
			}

			nodes := parse(input, simple, opts)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(nodes); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().BoolVar(&simple, "simple", false, "use the simple profile (emoji and text only)")
	cmd.Flags().IntVar(&nestLimit, "nest-limit", 0, "maximum nesting depth (0 for the default)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log rule enter/match/fail events")

	return cmd
}

func parse(input string, simple bool, opts []grammar.Option) []ast.Node {
	if simple {
		return grammar.ParseSimple(input, opts...)
	}
	return grammar.Parse(input, opts...)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
