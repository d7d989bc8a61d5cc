// Package listing reads versioned service listings: flat text files with
// one "name<TAB>value" record per line, one file per build.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one valid name/value pair read from a listing.
type Record struct {
	Name  string
	Value int64
}

// SkippedLine describes a malformed line rejected during parsing.
type SkippedLine struct {
	Number int // 1-based line number within the source
	Text   string
}

// ParseListing reads one version listing from r. Each non-blank line is
// split on its first tab; the left segment is the service name and the
// right segment must parse as a signed decimal integer. Lines that fail
// either rule (no tab, empty name, non-integer value) are skipped and
// reported, never aborting the source. Blank lines are ignored. A trailing
// carriage return is stripped so CRLF listings parse cleanly.
//
// Records are returned in file order; a name repeating within one file
// yields multiple records. Only a read failure produces an error.
func ParseListing(r io.Reader) ([]Record, []SkippedLine, error) {
	var (
		records []Record
		skipped []SkippedLine
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, raw, ok := strings.Cut(line, "\t")
		if !ok || name == "" {
			skipped = append(skipped, SkippedLine{Number: ln, Text: line})
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			skipped = append(skipped, SkippedLine{Number: ln, Text: line})
			continue
		}
		records = append(records, Record{Name: name, Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read listing: %w", err)
	}
	return records, skipped, nil
}
