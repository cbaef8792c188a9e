package certs

import (
	"github.com/J08nY/sec-certs/ir"
	"github.com/J08nY/sec-certs/registry"
)

var descriptors = []*registry.Descriptor{
	{
		Tag:    TagProtectionProfile,
		Encode: func(v any) (map[string]any, error) { return v.(ProtectionProfile).Encode() },
		Decode: decodeProtectionProfile,
		Hash: func(v any) (uint64, error) {
			return v.(ProtectionProfile).IdentityHash()
		},
	},
	{
		Tag:    TagMaintenanceReport,
		Encode: func(v any) (map[string]any, error) { return v.(MaintenanceReport).Encode() },
		Decode: decodeMaintenanceReport,
		Hash: func(v any) (uint64, error) {
			return v.(MaintenanceReport).IdentityHash()
		},
	},
	{
		Tag:    TagReference,
		Encode: func(v any) (map[string]any, error) { return v.(Reference).Encode() },
		Decode: decodeReference,
		Hash: func(v any) (uint64, error) {
			return v.(Reference).IdentityHash()
		},
	},
}

// Descriptors returns the domain descriptor set; the same slice every
// call, so repeated registration is a no-op.
func Descriptors() []*registry.Descriptor {
	return descriptors
}

// NewRegistry builds a registry holding every domain type in this
// package. Construction cannot conflict with itself; callers adding
// their own descriptors on top get the usual conflict checks.
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()
	for _, d := range Descriptors() {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

var _ registry.Serializable = ProtectionProfile{}
var _ registry.Serializable = MaintenanceReport{}
var _ registry.Serializable = Reference{}
var _ ir.Hasher = ProtectionProfile{}
var _ ir.Equaler = ProtectionProfile{}
