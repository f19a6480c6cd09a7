package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/bytelex/ebnflex"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no match")

func loadSpec(grammarFile string, rules []string) (*ebnflex.Spec, error) {
	grammar, err := ebnflex.LoadGrammar(grammarFile)
	if err != nil {
		return nil, err
	}
	return ebnflex.NewSpec(grammar, rules)
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func newMatchCmd() *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:   "match <grammar> [input]",
		Short: "Report the longest prefix of the input accepted by a token rule",
		Long: `Match compiles the token productions of an EBNF grammar and reports the
longest prefix of the input (a file, or stdin when omitted or "-") that one
of them accepts. The input is streamed and reading stops as soon as the
result is decided.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadSpec(args[0], rules)
			if err != nil {
				return err
			}

			in, err := openInput(cmd, args[1:])
			if err != nil {
				return err
			}
			defer in.Close()

			match, ok, err := spec.Matcher.FindReader(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if !ok {
				return errNoMatch
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d:%d\n", spec.Names[match.Rule], match.Start, match.End)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rules, "rules", nil, "productions to compile, in priority order (default: all token productions)")

	return cmd
}
