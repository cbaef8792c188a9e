package ir

import "testing"

func TestSymbolKeys(t *testing.T) {
	tests := []struct {
		sym       Symbol
		key       string
		bracketed string
	}{
		{Insert, "$insert", "__insert__"},
		{Delete, "$delete", "__delete__"},
		{Replace, "$replace", "__replace__"},
		{StrDiff, "$strdiff", "__strdiff__"},
		{SetDiff, "$setdiff", "__setdiff__"},
		{ArrayDiff, "$arraydiff", "__arraydiff__"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sym), func(t *testing.T) {
			if got := tt.sym.Key(); got != tt.key {
				t.Errorf("Key() = %q, want %q", got, tt.key)
			}
			if got := tt.sym.Bracketed(); got != tt.bracketed {
				t.Errorf("Bracketed() = %q, want %q", got, tt.bracketed)
			}
			sym, ok := SymbolOfKey(tt.key)
			if !ok || sym != tt.sym {
				t.Errorf("SymbolOfKey(%q) = %v, %v, want %v, true", tt.key, sym, ok, tt.sym)
			}
		})
	}
}

func TestSymbolOfKeyRejects(t *testing.T) {
	for _, key := range []string{"insert", "$nope", "", "__insert__", "$"} {
		if _, ok := SymbolOfKey(key); ok {
			t.Errorf("SymbolOfKey(%q) = true, want false", key)
		}
	}
}
