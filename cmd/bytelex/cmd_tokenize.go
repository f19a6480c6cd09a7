package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/bytelex/ebnflex"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var rules []string
	var skip []string

	cmd := &cobra.Command{
		Use:          "tokenize <grammar> [input]",
		Short:        "Split the input into tokens using the token productions of a grammar",
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

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			filename := ""
			if len(args) > 1 && args[1] != "-" {
				filename = args[1]
			}
			lexer := ebnflex.NewLexer(spec, data, filename, ebnflex.WithSkip(skip...))
			tokens, err := lexer.Tokenize()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rules, "rules", nil, "productions to compile, in priority order (default: all token productions)")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "token kinds to leave out of the output")

	return cmd
}
