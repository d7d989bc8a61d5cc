package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Markdown renders the pipe-delimited grid: header, dash divider, then one
// row per entry in registry order with a 1-based index. A missing value is
// an empty cell, never zero or a placeholder.
func Markdown(w io.Writer, in Input) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("|#|ServiceName|")
	for _, v := range in.Versions {
		bw.WriteString(v)
		bw.WriteByte('|')
	}
	bw.WriteByte('\n')

	bw.WriteString("|---|---|")
	for range in.Versions {
		bw.WriteString("---|")
	}
	bw.WriteByte('\n')

	for i, e := range in.Registry.Entries() {
		fmt.Fprintf(bw, "|%d|%s|", i+1, e.Name)
		for _, v := range in.Versions {
			if val, ok := e.Value(v); ok {
				bw.WriteString(strconv.FormatInt(val, 10))
			}
			bw.WriteByte('|')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
