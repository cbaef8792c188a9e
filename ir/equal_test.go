package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nils", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"ints", 1, int64(1), true},
		{"int vs integral float", 2, 2.0, true},
		{"fractional floats", 2.5, 2.5, true},
		{"strings", "a", "a", true},
		{"string vs path", "/x", Path("/x"), false},
		{"paths", Path("/x"), Path("/x"), true},
		{"bools", true, true, true},
		{"bool vs int", true, 1, false},
		{"sequences", []any{1, "a"}, []any{1.0, "a"}, true},
		{"sequence order", []any{1, 2}, []any{2, 1}, false},
		{"mappings", map[string]any{"a": 1}, map[string]any{"a": 1.0}, true},
		{"mapping extra key", map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}, false},
		{"hashmap vs map", HashMap{"_hash": int64(1), "a": 2}, map[string]any{"_hash": int64(1), "a": 2}, true},
		{"nested", map[string]any{"a": []any{map[string]any{"b": 1}}}, map[string]any{"a": []any{map[string]any{"b": 1.0}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEqualSets(t *testing.T) {
	a := mustSet(t, 1, 2, Path("/x"))
	b := mustFrozenSet(t, Path("/x"), 2.0, 1)
	if !Equal(a, b) {
		t.Error("sets with equal members should be Equal")
	}
	if Equal(a, []any{1, 2, Path("/x")}) {
		t.Error("a set should not Equal a sequence")
	}
}
