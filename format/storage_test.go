package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/J08nY/sec-certs/ir"
)

func TestStorageToWorkingSets(t *testing.T) {
	stored := map[string]any{
		"levels": map[string]any{
			TagKey:   TagSet,
			ValueKey: []any{"EAL4", "EAL4", "ALC_DVS.2"},
		},
		"ids": map[string]any{
			TagKey:   TagFrozenSet,
			ValueKey: []any{int64(1), int64(2)},
		},
	}
	w, err := NewStorage(stored).ToWorking()
	if err != nil {
		t.Fatalf("ToWorking() error = %v", err)
	}
	doc := w.Get().(map[string]any)

	levels, ok := doc["levels"].(*ir.Set)
	if !ok {
		t.Fatalf("levels = %T, want *ir.Set", doc["levels"])
	}
	if levels.Frozen() || levels.Len() != 2 {
		t.Errorf("levels = %v, want mutable set of 2", levels)
	}
	ids, ok := doc["ids"].(*ir.Set)
	if !ok {
		t.Fatalf("ids = %T, want *ir.Set", doc["ids"])
	}
	if !ids.Frozen() || ids.Len() != 2 {
		t.Errorf("ids = %v, want frozen set of 2", ids)
	}
}

func TestStorageToWorkingRestoresDotsAtDepth(t *testing.T) {
	stored := map[string]any{
		"web" + DotSub + "scan": map[string]any{
			"module" + DotSub + "name": "x",
			"inner": []any{
				map[string]any{"a" + DotSub + "b" + DotSub + "c": 1},
			},
		},
	}
	doc, err := Load(stored)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[string]any{
		"web.scan": map[string]any{
			"module.name": "x",
			"inner": []any{
				map[string]any{"a.b.c": 1},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestStorageToWorkingHashCarrying(t *testing.T) {
	stored := map[string]any{
		"paths": map[string]any{
			TagKey: TagSet,
			ValueKey: []any{
				map[string]any{TagKey: TagPath, ValueKey: "/x", HashKey: int64(11)},
				map[string]any{TagKey: TagPath, ValueKey: "/y", HashKey: int64(12)},
			},
		},
	}
	doc, err := Load(stored)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	paths := doc.(map[string]any)["paths"].(*ir.Set)
	if paths.Len() != 2 {
		t.Fatalf("paths set Len() = %d, want 2", paths.Len())
	}
	for _, e := range paths.Values() {
		if _, ok := e.(ir.HashMap); !ok {
			t.Errorf("set element = %T, want ir.HashMap", e)
		}
	}
}

func TestStorageToWorkingMalformed(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		atPath string
	}{
		{
			"set missing _value",
			map[string]any{"s": map[string]any{TagKey: TagSet}},
			"$.s",
		},
		{
			"frozenset missing _value",
			map[string]any{"s": map[string]any{TagKey: TagFrozenSet}},
			"$.s",
		},
		{
			"set with scalar _value",
			map[string]any{"s": map[string]any{TagKey: TagSet, ValueKey: 3}},
			"$.s",
		},
		{
			"nested in sequence",
			map[string]any{"l": []any{map[string]any{TagKey: TagSet}}},
			"$.l[0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.stored)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Load() error = %v, want ErrMalformed", err)
			}
			var cerr *ConvertError
			if !errors.As(err, &cerr) {
				t.Fatalf("Load() error is not a *ConvertError: %v", err)
			}
			if cerr.Path != tt.atPath {
				t.Errorf("error path = %q, want %q", cerr.Path, tt.atPath)
			}
		})
	}
}

func TestStorageToWorkingUnhashableSetElement(t *testing.T) {
	stored := map[string]any{
		"s": map[string]any{
			TagKey:   TagSet,
			ValueKey: []any{[]any{1, 2}},
		},
	}
	_, err := Load(stored)
	if !errors.Is(err, ir.ErrUnhashable) {
		t.Errorf("Load() error = %v, want ErrUnhashable", err)
	}
}

func TestToJSONMapping(t *testing.T) {
	stored := map[string]any{
		"a" + DotSub + "b": map[string]any{
			TagKey:   TagSet,
			ValueKey: []any{1, 2},
		},
		"p": map[string]any{TagKey: TagPath, ValueKey: "/x/y", HashKey: int64(9)},
		"obj": map[string]any{
			TagKey:    "ProtectionProfile",
			HashKey:   int64(77),
			"pp_name": "PP1",
		},
	}
	got, err := NewStorage(stored).ToJSONMapping()
	if err != nil {
		t.Fatalf("ToJSONMapping() error = %v", err)
	}
	want := map[string]any{
		"a.b": []any{1, 2},
		"p":   "/x/y",
		"obj": map[string]any{
			TagKey:    "ProtectionProfile",
			"pp_name": "PP1",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToJSONMapping() mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONMappingMalformedPath(t *testing.T) {
	stored := map[string]any{"p": map[string]any{TagKey: TagPath, ValueKey: 3}}
	_, err := NewStorage(stored).ToJSONMapping()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("ToJSONMapping() error = %v, want ErrMalformed", err)
	}
	if err != nil && !strings.Contains(err.Error(), "$.p") {
		t.Errorf("error %q does not name the offending path", err)
	}
}
