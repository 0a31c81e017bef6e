package result

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Outcome is how often one bitstring was read out.
type Outcome struct {
	Bits  string
	Count int
}

// Histogram counts the distinct rows of the matrix, most frequent first.
// Ties are ordered by bitstring.
func Histogram(m Matrix) []Outcome {
	counts := make(map[string]int)

	for _, row := range m {
		var sb strings.Builder
		for _, v := range row {
			sb.WriteString(strconv.Itoa(v))
		}

		counts[sb.String()]++
	}

	outcomes := make([]Outcome, 0, len(counts))
	for bits, count := range counts {
		outcomes = append(outcomes, Outcome{Bits: bits, Count: count})
	}

	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Count != outcomes[j].Count {
			return outcomes[i].Count > outcomes[j].Count
		}

		return outcomes[i].Bits < outcomes[j].Bits
	})

	return outcomes
}

// RenderHistogram writes the histogram of m as a table.
func RenderHistogram(w io.Writer, m Matrix) error {
	shots := len(m)

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Readout over %d shots", shots))
	t.AppendHeader(table.Row{"Bitstring", "Count", "Fraction"})

	for _, o := range Histogram(m) {
		t.AppendRow(table.Row{o.Bits, o.Count, fmt.Sprintf("%.2f", float64(o.Count)/float64(shots))})
	}

	t.AppendFooter(table.Row{"Total", shots, ""})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
