package format

import (
	"testing"

	"github.com/J08nY/sec-certs/ir"
)

func mustSet(t *testing.T, vals ...any) *ir.Set {
	t.Helper()
	s, err := ir.NewSet(vals...)
	if err != nil {
		t.Fatalf("NewSet(%v) error = %v", vals, err)
	}
	return s
}

func TestDecodeJSONKeepsIntsExact(t *testing.T) {
	data := []byte(`{"_hash": 9007199254740993, "n": 3, "f": 1.5}`)
	doc, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	m := doc.(map[string]any)
	if m[HashKey] != int64(9007199254740993) {
		t.Errorf("_hash = %v (%T), want exact int64", m[HashKey], m[HashKey])
	}
	if m["n"] != int64(3) {
		t.Errorf("n = %v (%T), want int64(3)", m["n"], m["n"])
	}
	if m["f"] != 1.5 {
		t.Errorf("f = %v (%T), want 1.5", m["f"], m["f"])
	}
}

func TestJSONRoundTripStorageDoc(t *testing.T) {
	stored, err := Store(map[string]any{
		"a.b": mustSet(t, int64(1), int64(2)),
		"n":   int64(42),
	})
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	data, err := EncodeJSON(stored)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	loaded, err := Load(decoded)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m := loaded.(map[string]any)
	s, ok := m["a.b"].(*ir.Set)
	if !ok {
		t.Fatalf("a.b = %T, want *ir.Set", m["a.b"])
	}
	if in, err := s.Contains(int64(2)); err != nil || !in {
		t.Errorf("Contains(2) = %v, %v, want true", in, err)
	}
	if !ir.Equal(m["n"], int64(42)) {
		t.Errorf("n = %v, want 42", m["n"])
	}
}

func TestMergePatch(t *testing.T) {
	doc := map[string]any{"keep": "x", "drop": "y", "n": int64(1 << 60)}
	got, err := MergePatch(doc, []byte(`{"drop": null, "add": 7}`))
	if err != nil {
		t.Fatalf("MergePatch() error = %v", err)
	}
	m := got.(map[string]any)
	if m["keep"] != "x" {
		t.Errorf("keep = %v, want x", m["keep"])
	}
	if _, ok := m["drop"]; ok {
		t.Errorf("drop survived the patch: %v", m)
	}
	if m["add"] != int64(7) {
		t.Errorf("add = %v (%T), want int64(7)", m["add"], m["add"])
	}
	if m["n"] != int64(1<<60) {
		t.Errorf("n = %v (%T), want exact int64", m["n"], m["n"])
	}
}

func TestMergePatchKeepsDocumentLoadable(t *testing.T) {
	stored, err := Store(map[string]any{"s": mustSet(t, "a", "b")})
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	patched, err := MergePatch(stored, []byte(`{"note": "added"}`))
	if err != nil {
		t.Fatalf("MergePatch() error = %v", err)
	}
	loaded, err := Load(patched)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m := loaded.(map[string]any)
	if _, ok := m["s"].(*ir.Set); !ok {
		t.Errorf("s = %T, want *ir.Set after patch", m["s"])
	}
	if m["note"] != "added" {
		t.Errorf("note = %v, want added", m["note"])
	}
}
