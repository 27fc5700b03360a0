// SPDX-License-Identifier: MIT

package exchange

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atomistic/errors"
)

// Format names a document encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	Msgpack Format = "msgpack"
)

// Formats lists the supported encodings.
func Formats() []Format { return []Format{JSON, YAML, Msgpack} }

// documentKeys are the keys a document may carry, for usage errors.
var documentKeys = []string{
	"cell", "pbc", "sites", "kinds",
	"symbol", "position", "kind_name", "charge", "mass", "magnetic_moment", "weight",
}

// ParseFormat validates a format name; "yml" and "mpk" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mpk":
		return Msgpack, nil
	}

	return "", errors.Usage("format", s, "json", "yaml", "msgpack")
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Usage("format", path, "json", "yaml", "msgpack")
	}

	return ParseFormat(ext)
}

// Decode reads one document in format f. Keys outside the document
// vocabulary are usage errors; malformed input is a schema error.
// The document is not validated; call Validate.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(f, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, decodeError(f, err)
		}
	case Msgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		dec.DisallowUnknownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(f, err)
		}
	default:
		_, err := ParseFormat(string(f))
		return nil, err
	}

	return &doc, nil
}

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(b []byte, f Format) (*Document, error) {
	return Decode(bytes.NewReader(b), f)
}

// Encode writes doc in format f. JSON and YAML are indented by two spaces.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "exchange: encode json")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "exchange: encode yaml")
		}
		return errors.Wrap(enc.Close(), "exchange: encode yaml")
	case Msgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json") // Use json tags for MessagePack
		return errors.Wrap(enc.Encode(doc), "exchange: encode msgpack")
	}
	_, err := ParseFormat(string(f))

	return err
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(doc *Document, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeError classifies a decoder failure: an unknown key is a usage
// error, anything else a schema error.
func decodeError(f Format, err error) error {
	msg := err.Error()
	if key, ok := unknownKey(msg); ok {
		return errors.WithDetail(errors.Usage("key", key, documentKeys...), msg)
	}

	return errors.WithDetail(errors.Schema("document", string(f), "must be well-formed "+string(f)), msg)
}

// unknownKey extracts the offending key from the decoders' messages:
//
//	json: unknown field "foo"
//	yaml: unmarshal errors:\n  line 3: field foo not found in type exchange.Document
//	msgpack: unknown field "foo"
func unknownKey(msg string) (string, bool) {
	if i := strings.Index(msg, "unknown field "); i >= 0 {
		return strings.Trim(msg[i+len("unknown field "):], `"`), true
	}
	if i := strings.Index(msg, "field "); i >= 0 {
		if j := strings.Index(msg[i:], " not found in type"); j >= 0 {
			return msg[i+len("field ") : i+j], true
		}
	}

	return "", false
}
