package adapter

import (
	"encoding/json"
	"encoding/xml"
	"strings"
)

// Decoder turns a raw response body into a value.
type Decoder[V any] func(body []byte, contentType string) (V, error)

// JSON decodes the body as JSON.
func JSON[V any]() Decoder[V] {
	return func(body []byte, _ string) (V, error) {
		var v V
		err := json.Unmarshal(body, &v)
		return v, err
	}
}

// XML decodes the body as XML.
func XML[V any]() Decoder[V] {
	return func(body []byte, _ string) (V, error) {
		var v V
		err := xml.Unmarshal(body, &v)
		return v, err
	}
}

// ByContentType decodes XML bodies as XML and everything else as JSON.
func ByContentType[V any]() Decoder[V] {
	decodeJSON, decodeXML := JSON[V](), XML[V]()
	return func(body []byte, contentType string) (V, error) {
		if strings.Contains(strings.ToLower(contentType), "xml") {
			return decodeXML(body, contentType)
		}
		return decodeJSON(body, contentType)
	}
}

// Raw returns a copy of the body bytes.
func Raw() Decoder[[]byte] {
	return func(body []byte, _ string) ([]byte, error) {
		return append([]byte(nil), body...), nil
	}
}

// Text returns the body as a string.
func Text() Decoder[string] {
	return func(body []byte, _ string) (string, error) {
		return string(body), nil
	}
}

// Discard ignores the body and returns the zero value. Useful for endpoints
// that answer with no content.
func Discard[V any]() Decoder[V] {
	return func([]byte, string) (V, error) {
		var v V
		return v, nil
	}
}
