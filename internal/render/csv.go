package render

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSV renders the comma-separated table. encoding/csv applies the RFC 4180
// quoting rules: only fields containing the delimiter, a quote, or a
// newline are quoted, with embedded quotes doubled. Version identifiers
// are filename stems and index/value cells are digits, so in practice only
// the name column ever needs quoting.
func CSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(in.Versions)+2)
	header = append(header, "Index", "ServiceName")
	header = append(header, in.Versions...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, e := range in.Registry.Entries() {
		row[0] = strconv.Itoa(i + 1)
		row[1] = e.Name
		for j, v := range in.Versions {
			row[2+j] = ""
			if val, ok := e.Value(v); ok {
				row[2+j] = strconv.FormatInt(val, 10)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
