package convergence

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Export writes the columns side by side, one row per index, separated by
// delim. Rows stop at the shortest column.
func Export(w io.Writer, delim rune, columns ...[]float64) (err error) {
	if len(columns) == 0 {
		return
	}
	var (
		rows = len(columns[0])
		rec  = make([]string, len(columns))
	)
	for _, c := range columns[1:] {
		rows = min(rows, len(c))
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim
	for i := 0; i < rows; i++ {
		for j, c := range columns {
			rec[j] = formatFloat(c[i])
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile is Export to a file, an empty name is a no-op
func ExportFile(fileName string, delim rune, columns ...[]float64) (err error) {
	var (
		f *os.File
	)
	if len(fileName) == 0 {
		return
	}
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	w := bufio.NewWriter(f)
	if err = Export(w, delim, columns...); err != nil {
		_ = f.Close()
		return
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}
