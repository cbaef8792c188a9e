// Package debug gates development logging behind environment flags so
// production runs stay silent.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Diff  bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("SECCERTS_DEBUG_DIFF")
	d.Patch = boolEnv("SECCERTS_DEBUG_PATCH")
	d.Query = boolEnv("SECCERTS_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(data)
	os.Stderr.Write([]byte{'\n'})
}
