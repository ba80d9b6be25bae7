package ir

import (
	"io"

	"github.com/goccy/go-json"
)

// EncodeJSON writes the document as indented JSON. Field order inside
// the document is already deterministic, so identical inputs produce
// byte-identical output.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// DecodeJSON reads a document back, mostly for tooling and tests.
func DecodeJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
