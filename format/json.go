package format

import (
	"bytes"

	"github.com/goccy/go-json"
)

// EncodeJSON marshals a storage-stage document.
func EncodeJSON(doc any) ([]byte, error) {
	return json.Marshal(doc)
}

// DecodeJSON unmarshals a storage-stage document, keeping integers exact
// instead of widening everything to float64. Carried identity hashes do
// not survive a float64 round trip, so this is the decoder the storage
// boundary must use.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return decodedNumbers(v), nil
}

func decodedNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		for k, vv := range x {
			x[k] = decodedNumbers(vv)
		}
		return x
	case []any:
		for i, vv := range x {
			x[i] = decodedNumbers(vv)
		}
		return x
	}
	return v
}
