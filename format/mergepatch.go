package format

import (
	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 JSON merge patch to a storage-stage
// document and returns the patched document. The patch itself must use
// storage-encoded keys (escaped dots, tagged collections); the result is
// decoded with exact integers so carried hashes survive.
func MergePatch(doc any, patch []byte) (any, error) {
	orig, err := EncodeJSON(doc)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(orig, patch)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(merged)
}
