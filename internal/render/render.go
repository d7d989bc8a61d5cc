// Package render serializes a composed registry into one of the supported
// output formats. Every renderer is a pure function from the frozen
// registry and the fixed version order to a byte stream; none mutate
// shared state.
package render

import (
	"fmt"
	"io"

	"github.com/svcmerge/svcmerge/internal/compose"
	"github.com/svcmerge/svcmerge/internal/registry"
)

// Format selects one output renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHTML     Format = "html"
)

// DefaultFormat is used when neither flags nor config name one.
const DefaultFormat = FormatMarkdown

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatMarkdown, FormatCSV, FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Extension returns the default output file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatHTML:
		return ".html"
	}
	return ".out"
}

// Input is the read-only payload every renderer receives.
type Input struct {
	Registry *registry.Registry
	Versions []string

	// FirstSeen groups rows in the HTML renderer; other renderers
	// ignore it.
	FirstSeen map[string]string

	// Title labels the HTML page; other renderers ignore it.
	Title string
}

// FromResult builds a renderer Input from a compose result.
func FromResult(res *compose.Result, title string) Input {
	return Input{
		Registry:  res.Registry,
		Versions:  res.Versions,
		FirstSeen: res.FirstSeen,
		Title:     title,
	}
}

// Renderer serializes a composed registry to w.
type Renderer func(w io.Writer, in Input) error

// renderers is the format dispatch table.
var renderers = map[Format]Renderer{
	FormatMarkdown: Markdown,
	FormatCSV:      CSV,
	FormatJSON:     JSON,
	FormatYAML:     YAML,
	FormatHTML:     HTML,
}

// Render dispatches to the renderer registered for f.
func Render(w io.Writer, f Format, in Input) error {
	fn, ok := renderers[f]
	if !ok {
		return fmt.Errorf("unknown output format %q (no renderer registered)", f)
	}
	return fn(w, in)
}
