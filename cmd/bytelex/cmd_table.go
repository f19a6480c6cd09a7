package main

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/bytelex/automaton"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:          "table <grammar>",
		Short:        "Compile a grammar and print its transition table",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadSpec(args[0], rules)
			if err != nil {
				return err
			}
			m := spec.Matcher

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d rules, %d states, initial state %d", m.Rules(), m.States(), m.Initial())
			if r, ok := m.NullableRule(); ok {
				fmt.Fprintf(out, ", empty input accepted by %s", spec.Names[r])
			}
			fmt.Fprintln(out)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"STATE", "BYTES", "ACTION"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(tableRows(m, spec.Names))
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rules, "rules", nil, "productions to compile, in priority order (default: all token productions)")

	return cmd
}

// tableRows lists, per state, runs of consecutive bytes that share the
// same non-failing action.
func tableRows(m *automaton.Matcher, names []string) [][]string {
	var rows [][]string
	for s := 0; s < m.States(); s++ {
		label := strconv.Itoa(s)
		if s == m.Initial() {
			label += "*"
		}
		for lo := 0; lo < 256; {
			a := m.Action(s, byte(lo))
			hi := lo
			for hi+1 < 256 && m.Action(s, byte(hi+1)) == a {
				hi++
			}
			if a.Kind != automaton.Failure {
				rows = append(rows, []string{label, byteRange(byte(lo), byte(hi)), describe(a, names)})
			}
			lo = hi + 1
		}
	}
	return rows
}

func describe(a automaton.Action, names []string) string {
	switch a.Kind {
	case automaton.GoTo:
		return fmt.Sprintf("goto %d", a.Next)
	case automaton.Accept:
		return fmt.Sprintf("accept %s", names[a.Rule])
	case automaton.AcceptAndGoto:
		return fmt.Sprintf("accept %s, goto %d", names[a.Rule], a.Next)
	}
	return "fail"
}

func byteRange(lo, hi byte) string {
	if lo == hi {
		return printable(lo)
	}
	return printable(lo) + "-" + printable(hi)
}

func printable(b byte) string {
	if b > ' ' && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
