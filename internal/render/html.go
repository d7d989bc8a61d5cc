package render

import (
	_ "embed"
	"html/template"
	"io"
	"strconv"
)

// Viewer assets shipped inside the generated page. The script is
// dependency-free and runs entirely in the browser; its filter and
// column-diff behavior is part of the output contract.
var (
	//go:embed assets/page.html.tmpl
	pageHTML string

	//go:embed assets/viewer.js
	viewerJS string

	//go:embed assets/viewer.css
	viewerCSS string
)

var pageTpl = template.Must(template.New("page").Parse(pageHTML))

type htmlRow struct {
	Index int
	Name  string
	Cells []string // one per version, empty when the service is absent
}

type htmlGroup struct {
	Version string
	Rows    []htmlRow
}

type htmlPage struct {
	Title    string
	Versions []string
	Groups   []htmlGroup
	Span     int // group header colspan: index + name + versions
	Style    template.CSS
	Script   template.JS
}

// HTML renders the self-contained interactive page: the full grid grouped
// by the version that introduced each service (groups in fixed version
// order, rows inside a group name-sorted, display index sequential over
// the grouped order), plus a live name filter and per-version column
// toggles with cross-version difference highlighting.
func HTML(w io.Writer, in Input) error {
	page := htmlPage{
		Title:    in.Title,
		Versions: in.Versions,
		Span:     len(in.Versions) + 2,
		Style:    template.CSS(viewerCSS),
		Script:   template.JS(viewerJS),
	}
	if page.Title == "" {
		page.Title = "Service Table"
	}

	index := 0
	for _, version := range in.Versions {
		group := htmlGroup{Version: version}
		// Registry order is name-sorted, so filtering it per group keeps
		// rows name-sorted within the group.
		for _, e := range in.Registry.Entries() {
			if in.FirstSeen[e.Name] != version {
				continue
			}
			index++
			row := htmlRow{
				Index: index,
				Name:  e.Name,
				Cells: make([]string, len(in.Versions)),
			}
			for i, v := range in.Versions {
				if val, ok := e.Value(v); ok {
					row.Cells[i] = strconv.FormatInt(val, 10)
				}
			}
			group.Rows = append(group.Rows, row)
		}
		if len(group.Rows) > 0 {
			page.Groups = append(page.Groups, group)
		}
	}

	return pageTpl.Execute(w, page)
}
