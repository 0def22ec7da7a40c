package report

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSONFormatter renders documents as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format renders doc as JSON.
func (f *JSONFormatter) Format(doc *Document) (string, error) {
	if doc == nil {
		return "", nil
	}

	var (
		data []byte
		err  error
	)
	if f.Indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// YAMLFormatter renders documents as YAML.
type YAMLFormatter struct{}

// Format renders doc as YAML.
func (f *YAMLFormatter) Format(doc *Document) (string, error) {
	if doc == nil {
		return "", nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
