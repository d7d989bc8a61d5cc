package main

import (
	"fmt"
	"io"

	"github.com/svcmerge/svcmerge/internal/compose"
)

// printStats writes the per-source ingest summary produced by -validate.
func printStats(w io.Writer, res *compose.Result) {
	for _, s := range res.Stats.Sources {
		fmt.Fprintf(w, "%s: %d applied, %d skipped\n", s.Version, s.Applied, s.Skipped)
	}
	fmt.Fprintf(w, "total: %d services across %d versions\n",
		res.Registry.Len(), len(res.Versions))
}
