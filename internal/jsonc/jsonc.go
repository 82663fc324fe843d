// Package jsonc strips comments from JSON-like input so that a strict JSON
// decoder can read it.
//
// Block comments (/* ... */), C line comments (// ...) and shell line
// comments (# ...) are replaced byte for byte with spaces. Double-quoted
// strings, including backslash escapes, pass through untouched even when
// they contain comment markers.
package jsonc

import (
	"bytes"
	"encoding/json"
	"io"
)

// StripComments returns a copy of data with every comment blanked out.
func StripComments(data []byte) ([]byte, error) {
	out, err := io.ReadAll(NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unmarshal strips comments from data and decodes the result into v.
func Unmarshal(data []byte, v any) error {
	stripped, err := StripComments(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(stripped, v)
}

// NewDecoder returns a JSON decoder that reads from r through a Reader.
func NewDecoder(r io.Reader) *json.Decoder {
	return json.NewDecoder(NewReader(r))
}
