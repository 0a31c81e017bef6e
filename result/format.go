package result

import (
	"fmt"
	"strconv"
	"strings"
)

// Console layout, matching how numpy prints integer arrays.
const (
	lineWidth     = 75
	edgeItems     = 3
	summaryLimit  = 1000
	summaryInsert = "..."
)

// String renders the matrix the way numpy prints a 2-D integer array. Large
// matrices are summarised with "..." keeping three items at each edge.
func (m Matrix) String() string {
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return "[]"
	}

	summarize := rows*cols > summaryLimit
	rowIdx := edgeIndices(rows, summarize)
	colIdx := edgeIndices(cols, summarize)

	width := 0
	for _, i := range rowIdx {
		for _, j := range colIdx {
			if i < 0 || j < 0 {
				continue
			}

			if w := len(strconv.Itoa(m[i][j])); w > width {
				width = w
			}
		}
	}

	const hanging = " "

	var sb strings.Builder

	for n, i := range rowIdx {
		sb.WriteString(hanging)

		if i < 0 {
			sb.WriteString(summaryInsert)
		} else {
			sb.WriteString(m.formatRow(i, colIdx, width, hanging+" ", lineWidth-1))
		}

		if n < len(rowIdx)-1 {
			sb.WriteByte('\n')
		}
	}

	return "[" + sb.String()[len(hanging):] + "]"
}

// formatRow lays out one row, wrapping onto lines prefixed with indent when
// it would exceed maxWidth.
func (m Matrix) formatRow(i int, colIdx []int, width int, indent string, maxWidth int) string {
	var out strings.Builder

	line := indent

	for n, j := range colIdx {
		word := summaryInsert
		if j >= 0 {
			word = fmt.Sprintf("%*d", width, m[i][j])
		}

		if len(line)+len(word) > maxWidth && len(line) > len(indent) {
			out.WriteString(strings.TrimRight(line, " ") + "\n")
			line = indent
		}

		line += word

		if n < len(colIdx)-1 {
			line += " "
		}
	}

	out.WriteString(line)

	return "[" + out.String()[len(indent):] + "]"
}

// edgeIndices lists the indices to print along one axis, with -1 standing
// for the summary marker.
func edgeIndices(n int, summarize bool) []int {
	if !summarize || n <= 2*edgeItems {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	idx := make([]int, 0, 2*edgeItems+1)
	for i := 0; i < edgeItems; i++ {
		idx = append(idx, i)
	}

	idx = append(idx, -1)

	for i := n - edgeItems; i < n; i++ {
		idx = append(idx, i)
	}

	return idx
}
