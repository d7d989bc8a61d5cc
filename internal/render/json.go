package render

import (
	"encoding/json"
	"io"
)

// document is the machine-readable shape shared by the JSON and YAML
// renderers: the version list once, then one record per service whose
// values align positionally with the versions. A null value marks a
// version where the service has no entry.
type document struct {
	Versions []string  `json:"versions" yaml:"versions"`
	Services []service `json:"services" yaml:"services"`
}

type service struct {
	Name   string   `json:"name" yaml:"name"`
	Values []*int64 `json:"values" yaml:"values"`
}

func buildDocument(in Input) document {
	doc := document{
		Versions: in.Versions,
		Services: make([]service, 0, in.Registry.Len()),
	}
	for _, e := range in.Registry.Entries() {
		values := make([]*int64, len(in.Versions))
		for i, v := range in.Versions {
			if val, ok := e.Value(v); ok {
				val := val
				values[i] = &val
			}
		}
		doc.Services = append(doc.Services, service{Name: e.Name, Values: values})
	}
	return doc
}

// JSON renders the structured document with two-space indentation and a
// trailing newline.
func JSON(w io.Writer, in Input) error {
	data, err := json.MarshalIndent(buildDocument(in), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
