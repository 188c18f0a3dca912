// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a column-aligned rendering of m's logical view to w, one
// bracketed row per line. Each column is right-aligned to the width of its
// longest formatted value. Elements are formatted through the arithmetic's
// float64 bridge, so fixed-point values print in real units.
//
// Fprint only reads m. Errors: ErrNilMatrix, ErrReleased, or the writer's error.
func Fprint[T any](w io.Writer, m *Dense[T], opts ...PrintOption) error {
	if err := m.live(); err != nil {
		return matrixErrorf("Fprint", err)
	}
	o := gatherPrintOptions(opts)

	rows, cols := m.lay.rows, m.lay.cols
	cells := make([]string, rows*cols)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := strconv.FormatFloat(m.ar.ToFloat64(m.at(i, j)), o.format, o.precision, 64)
			cells[i*cols+j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < rows; i++ {
		bw.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				bw.WriteString(o.separator)
			}
			s := cells[i*cols+j]
			bw.WriteString(strings.Repeat(" ", widths[j]-len(s)))
			bw.WriteString(s)
		}
		bw.WriteString("]\n")
	}
	return bw.Flush()
}
