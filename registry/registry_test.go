package registry

import (
	"strings"
	"testing"
)

func widgetDescriptor() *Descriptor {
	return &Descriptor{
		Tag: "Widget",
		Encode: func(v any) (map[string]any, error) {
			return map[string]any{"n": v.(int)}, nil
		},
		Decode: func(fields map[string]any) (any, error) {
			return fields["n"], nil
		},
	}
}

func TestRegisterAndResolve(t *testing.T) {
	reg := New()
	d := widgetDescriptor()
	if err := reg.Register(d); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	got, ok := reg.Resolve("Widget")
	if !ok || got != d {
		t.Errorf("Resolve(Widget) = %v, %v, want the registered descriptor", got, ok)
	}
	if _, ok := reg.Resolve("Unknown"); ok {
		t.Error("Resolve(Unknown) = true, want false")
	}
}

func TestRegisterIdempotent(t *testing.T) {
	reg := New()
	d := widgetDescriptor()
	if err := reg.Register(d); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(d); err != nil {
		t.Errorf("re-registering the same descriptor error = %v, want nil", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	reg := New()
	if err := reg.Register(widgetDescriptor()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err := reg.Register(widgetDescriptor())
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("conflicting Register() error = %v, want already-registered", err)
	}
	if len(reg.Tags()) != 1 {
		t.Errorf("Tags() = %v, want just Widget after rejected conflict", reg.Tags())
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := New()
	if err := reg.Register(nil); err == nil {
		t.Error("Register(nil) error = nil, want error")
	}
	if err := reg.Register(&Descriptor{Decode: func(map[string]any) (any, error) { return nil, nil }}); err == nil {
		t.Error("Register() without tag error = nil, want error")
	}
	if err := reg.Register(&Descriptor{Tag: "X"}); err == nil {
		t.Error("Register() without decode error = nil, want error")
	}
}

func TestTagsSorted(t *testing.T) {
	reg := New()
	for _, tag := range []string{"b", "a", "c"} {
		d := widgetDescriptor()
		d.Tag = tag
		if err := reg.Register(d); err != nil {
			t.Fatalf("Register(%q) error = %v", tag, err)
		}
	}
	got := reg.Tags()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tags() = %v, want %v", got, want)
		}
	}
}
