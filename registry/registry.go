// Package registry maps type-tag strings to domain-type descriptors used
// for Obj-stage resolution.
//
// # Usage
//
//	reg := registry.New()
//	if err := reg.Register(desc); err != nil {
//	    // a conflicting registration is a startup configuration error
//	}
//	desc, ok := reg.Resolve("ProtectionProfile")
//
// Build the registry once, eagerly, at process startup and treat it as
// read-only afterwards. Registering a different descriptor under an
// already-taken tag is reported as an error, never silently overwritten.
//
// # Related Packages
//
//   - github.com/J08nY/sec-certs/format - dispatches on tags at the Raw↔Obj hop
//   - github.com/J08nY/sec-certs/certs - registers the domain types
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Serializable is the contract a domain type implements to participate in
// Obj-stage resolution: a stable globally-unique tag and an encode
// operation producing a mapping of field name to document value.
type Serializable interface {
	SerialTag() string
	Encode() (map[string]any, error)
}

// Descriptor is the vtable registered for one domain type. Decode receives
// the tagged mapping's fields with the reserved keys already stripped.
// Hash is optional; when nil the type has no identity hash.
type Descriptor struct {
	Tag    string
	Encode func(v any) (map[string]any, error)
	Decode func(fields map[string]any) (any, error)
	Hash   func(v any) (uint64, error)
}

// Registry is a tag → descriptor map. It is safe for concurrent reads;
// writes belong in startup code only.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]*Descriptor
}

func New() *Registry {
	return &Registry{tags: make(map[string]*Descriptor)}
}

// Register adds a descriptor to the registry. Re-registering the same
// descriptor is a no-op; registering a different descriptor under an
// existing tag is a conflict and is reported.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("cannot register nil descriptor")
	}
	if d.Tag == "" {
		return fmt.Errorf("descriptor must have a tag")
	}
	if d.Decode == nil {
		return fmt.Errorf("descriptor %q must have a decode operation", d.Tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.tags[d.Tag]; exists {
		if prev == d {
			return nil
		}
		return fmt.Errorf("tag %q already registered", d.Tag)
	}
	r.tags[d.Tag] = d
	return nil
}

// Resolve looks up a descriptor by tag.
func (r *Registry) Resolve(tag string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.tags[tag]
	return d, ok
}

// Tags returns all registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
