package ir

import "strings"

// Symbol is a sentinel mapping key used by the diff machinery. Symbols
// are not ordinary field names: inside Working documents they appear in
// a reserved "$"-prefixed key form, and the Working→Storage conversion
// renders them as a bracketed "__label__" string. The reverse trip does
// not reconstruct the symbol; stored diffs are write-only metadata.
type Symbol string

const (
	Insert    Symbol = "insert"
	Delete    Symbol = "delete"
	Replace   Symbol = "replace"
	StrDiff   Symbol = "strdiff"
	SetDiff   Symbol = "setdiff"
	ArrayDiff Symbol = "arraydiff"
)

const symbolPrefix = "$"

func Symbols() []Symbol {
	return []Symbol{Insert, Delete, Replace, StrDiff, SetDiff, ArrayDiff}
}

// Key returns the Working-stage mapping key form of the symbol.
func (s Symbol) Key() string {
	return symbolPrefix + string(s)
}

// Bracketed returns the Storage-stage rendering of the symbol key.
func (s Symbol) Bracketed() string {
	return "__" + string(s) + "__"
}

func (s Symbol) String() string {
	return s.Key()
}

// SymbolOfKey reports whether key is the Working-stage form of a known
// symbol, and which.
func SymbolOfKey(key string) (Symbol, bool) {
	if !strings.HasPrefix(key, symbolPrefix) {
		return "", false
	}
	s := Symbol(strings.TrimPrefix(key, symbolPrefix))
	for _, known := range Symbols() {
		if s == known {
			return s, true
		}
	}
	return "", false
}
