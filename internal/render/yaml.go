package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML renders the same document shape as the JSON renderer; absent
// values encode as null.
func YAML(w io.Writer, in Input) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(in)); err != nil {
		return err
	}
	return enc.Close()
}
