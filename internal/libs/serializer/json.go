// Package serializer provides serialization interfaces and implementations for converting
// statistics reports to and from byte slices.
//
// The package includes a default JSON serializer based on goccy/go-json, a msgpack
// serializer based on shamaton/msgpack and a CBOR serializer based on ugorji/go/codec.
// JSON has no representation for NaN or infinities, so reports holding such values
// only encode with the binary serializers.
package serializer

import (
	"github.com/goccy/go-json"

	"github.com/hyp3rd/ewrap"
)

// DefaultJSONSerializer leverages goccy/go-json to serialize reports.
type DefaultJSONSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*DefaultJSONSerializer) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal json")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*DefaultJSONSerializer) Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal json")
	}

	return nil
}

// ContentType returns the media type of the encoding.
func (*DefaultJSONSerializer) ContentType() string { return "application/json" }
