package xjson

import (
	stdjson "encoding/json"
	"io"

	gjson "github.com/goccy/go-json"
)

// Wrappers keep goccy/go-json behind a single import site so callers never
// choose a JSON implementation themselves.

func Marshal(v interface{}) ([]byte, error) {
	return gjson.Marshal(v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gjson.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return gjson.Unmarshal(data, v)
}

// Decode reads a single JSON document from r, rejecting unknown fields when
// strict is set.
func Decode(r io.Reader, v interface{}, strict bool) error {
	dec := gjson.NewDecoder(r)
	if strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

func Encode(w io.Writer, v interface{}, pretty bool) error {
	enc := gjson.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// RawMessage is kept compatible with encoding/json's RawMessage type.
type RawMessage = stdjson.RawMessage
