package format

import (
	"strconv"
	"strings"

	"github.com/J08nY/sec-certs/ir"
)

// Reserved keys and tags of the stage encodings.
const (
	TagKey   = "_type"
	ValueKey = "_value"
	HashKey  = ir.HashKey

	TagSet       = "set"
	TagFrozenSet = "frozenset"
	TagPath      = "Path"
)

// DotSub replaces literal dots in mapping keys at the storage stage.
// U+FF0E FULLWIDTH FULL STOP, as the stored datasets use.
const DotSub = "．"

func escapeDots(key string) string {
	return strings.ReplaceAll(key, ".", DotSub)
}

func restoreDots(key string) string {
	return strings.ReplaceAll(key, DotSub, ".")
}

// Document-path helpers for error reporting, in "$.field[0]" form.

func atField(at, key string) string {
	return at + "." + key
}

func atIndex(at string, i int) string {
	return at + "[" + strconv.Itoa(i) + "]"
}
