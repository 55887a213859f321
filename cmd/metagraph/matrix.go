package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metagraph/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the adjacency, closure, or incidence matrix",
	Long: `Matrix prints the document metagraph's adjacency matrix cell by cell.
With --closure the transitive closure A* is printed instead; with
--incidence the element-by-edge incidence grid.`,
	RunE: runMatrix,
}

var (
	matrixClosure   bool
	matrixIncidence bool
)

func init() {
	rootCmd.AddCommand(matrixCmd)

	matrixCmd.Flags().BoolVar(&matrixClosure, "closure", false, "print the closure matrix")
	matrixCmd.Flags().BoolVar(&matrixIncidence, "incidence", false, "print the incidence matrix")
	matrixCmd.MarkFlagsMutuallyExclusive("closure", "incidence")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	g, err := doc.metagraph()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if matrixIncidence {
		inc, err := matrix.Incidence(g)
		if err != nil {
			return err
		}
		return printIncidence(out, inc)
	}

	var m *matrix.TripleMatrix
	if matrixClosure {
		m, err = matrix.Closure(g, matrix.WithContext(cmd.Context()))
	} else {
		m, err = matrix.Adjacency(g)
	}
	if err != nil {
		return err
	}
	return printTriples(out, m)
}

// printTriples lists the non-empty cells of a Triple matrix, one line per
// (row, column) pair.
func printTriples(out io.Writer, m *matrix.TripleMatrix) error {
	order := m.Order()
	for i, a := range order {
		for j, b := range order {
			cell, err := m.At(i, j)
			if err != nil {
				return err
			}
			if len(cell) == 0 {
				continue
			}
			rendered := make([]string, len(cell))
			for k, t := range cell {
				rendered[k] = t.String()
			}
			fmt.Fprintf(out, "(%s, %s): %s\n", a, b, strings.Join(rendered, "; "))
		}
	}
	return nil
}

// printIncidence writes the incidence grid with the edge list as a legend.
func printIncidence(out io.Writer, inc *matrix.IncidenceMatrix) error {
	for j, e := range inc.Edges() {
		fmt.Fprintf(out, "e%d = %s\n", j+1, e)
	}
	for i, el := range inc.Order() {
		row, err := inc.Row(i)
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%2d", v)
		}
		fmt.Fprintf(out, "%s: %s\n", el, strings.Join(cells, " "))
	}
	return nil
}
