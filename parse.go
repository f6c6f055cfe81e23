package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kbukum/docstore/transport"
)

// Decoder decodes a structured document from a stream.
type Decoder interface {
	Decode(v any) error
}

// DecodeFunc reads one value of type T from a content-type-appropriate
// decoder. It may fail on malformed input.
type DecodeFunc[T any] func(dec Decoder) (T, error)

// ContentType identifies a supported response body encoding.
type ContentType int

const (
	// ContentTypeUnknown is an unrecognized media type.
	ContentTypeUnknown ContentType = iota
	// ContentTypeJSON is application/json.
	ContentTypeJSON
	// ContentTypeYAML is application/yaml and its aliases.
	ContentTypeYAML
)

// ContentTypeFromMediaType resolves a Content-Type header value to a
// supported content type. Returns ContentTypeUnknown for anything else.
func ContentTypeFromMediaType(mediaType string) ContentType {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mediaType))
	}
	switch mt {
	case "application/json":
		return ContentTypeJSON
	case "application/yaml", "application/x-yaml", "text/yaml":
		return ContentTypeYAML
	default:
		return ContentTypeUnknown
	}
}

// NewDecoder builds a decoder for this content type over r.
func (ct ContentType) NewDecoder(r io.Reader) Decoder {
	switch ct {
	case ContentTypeYAML:
		return yaml.NewDecoder(r)
	default:
		return json.NewDecoder(r)
	}
}

// ParseEntity decodes a response entity with the given decode function.
// It fails fast when the entity is absent, declares no content type, or
// declares a content type outside the supported set.
func ParseEntity[T any](entity *transport.Entity, decode DecodeFunc[T]) (T, error) {
	var zero T
	if entity == nil {
		return zero, fmt.Errorf("docstore: response body expected but not returned")
	}
	if entity.ContentType == "" {
		return zero, fmt.Errorf("docstore: response did not include a Content-Type header, unable to parse response body")
	}
	ct := ContentTypeFromMediaType(entity.ContentType)
	if ct == ContentTypeUnknown {
		return zero, fmt.Errorf("docstore: unsupported Content-Type: %s", entity.ContentType)
	}
	return decode(ct.NewDecoder(bytes.NewReader(entity.Body)))
}
