package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metagraph/cond"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Resolve a conditional metagraph against a truth assignment",
	Long: `Context resolves the document's conditional metagraph against the
propositions listed as --true and --false: edges guarded by a false
proposition are dropped, true propositions are stripped from the
remaining guards, and unassigned propositions stay as guards.`,
	RunE: runContext,
}

var (
	contextTrue  []string
	contextFalse []string
)

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.Flags().StringSliceVar(&contextTrue, "true", nil, "propositions assigned true")
	contextCmd.Flags().StringSliceVar(&contextFalse, "false", nil, "propositions assigned false")
}

func runContext(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	cmg, err := doc.conditional()
	if err != nil {
		return err
	}

	resolved, err := cond.Context(cmg, toSet(contextTrue), toSet(contextFalse))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d of %d edges remain\n", resolved.EdgeCount(), cmg.EdgeCount())
	for _, e := range resolved.Edges() {
		if label := e.Label(); label != "" {
			fmt.Fprintf(out, "%s (%s)\n", e, label)
		} else {
			fmt.Fprintln(out, e)
		}
	}
	return nil
}
