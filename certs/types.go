package certs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/J08nY/sec-certs/ir"
)

// Wire spelling of the maintenance keys predates this codebase and is
// kept for compatibility with existing dumps.
const (
	TagProtectionProfile = "ProtectionProfile"
	TagMaintenanceReport = "MaintainanceReport"
	TagReference         = "Reference"
)

// Digest is the primary key scheme: hex of the first 16 bytes of the
// SHA-256 over the concatenated parts.
func Digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// ProtectionProfile is a profile a certificate conforms to. IDs is a
// frozen set of scheme identifiers and may be nil; identity is the
// name and link only, the IDs carry no identity.
type ProtectionProfile struct {
	Name string
	Link string
	IDs  *ir.Set
}

// NewProtectionProfile normalizes the name and link and freezes the id
// set.
func NewProtectionProfile(name, link string, ids ...string) (ProtectionProfile, error) {
	pp := ProtectionProfile{
		Name: SanitizeString(name),
		Link: SanitizeLink(link),
	}
	if len(ids) > 0 {
		elems := make([]any, len(ids))
		for i, id := range ids {
			elems[i] = id
		}
		set, err := ir.NewFrozenSet(elems...)
		if err != nil {
			return ProtectionProfile{}, err
		}
		pp.IDs = set
	}
	return pp, nil
}

func (p ProtectionProfile) SerialTag() string { return TagProtectionProfile }

func (p ProtectionProfile) Encode() (map[string]any, error) {
	m := map[string]any{
		"pp_name": encodeOptString(p.Name),
		"pp_link": encodeOptString(p.Link),
		"pp_ids":  nil,
	}
	if p.IDs != nil {
		m["pp_ids"] = p.IDs
	}
	return m, nil
}

func (p ProtectionProfile) IdentityHash() (uint64, error) {
	return ir.HashValue(TagProtectionProfile + "\x00" + p.Name + "\x00" + p.Link)
}

// Equal compares by name and link. Two profiles with the same identity
// but different id sets are the same profile seen by different sources.
func (p ProtectionProfile) Equal(other any) bool {
	o, ok := other.(ProtectionProfile)
	return ok && p.Name == o.Name && p.Link == o.Link
}

// Decoding constructs through NewProtectionProfile so stored fields get
// the same normalization as fields arriving from a scrape.
func decodeProtectionProfile(fields map[string]any) (any, error) {
	var raw []any
	switch ids := fields["pp_ids"].(type) {
	case nil:
	case *ir.Set:
		raw = ids.Values()
	case []any:
		raw = ids
	default:
		return nil, fmt.Errorf("pp_ids: unsupported value %T", ids)
	}
	ids := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("pp_ids: unsupported element %T", v)
		}
		ids[i] = s
	}
	return NewProtectionProfile(
		decodeOptString(fields["pp_name"]),
		decodeOptString(fields["pp_link"]),
		ids...,
	)
}

// MaintenanceReport records a maintenance update of a certificate.
type MaintenanceReport struct {
	Date       time.Time
	Title      string
	ReportLink string
	STLink     string
}

// NewMaintenanceReport normalizes the title, links and date.
func NewMaintenanceReport(date, title, reportLink, stLink string) (MaintenanceReport, error) {
	d, err := SanitizeDate(date)
	if err != nil {
		return MaintenanceReport{}, err
	}
	return MaintenanceReport{
		Date:       d,
		Title:      SanitizeString(title),
		ReportLink: SanitizeLink(reportLink),
		STLink:     SanitizeLink(stLink),
	}, nil
}

func (m MaintenanceReport) SerialTag() string { return TagMaintenanceReport }

func (m MaintenanceReport) Encode() (map[string]any, error) {
	return map[string]any{
		"maintainance_date":        encodeOptString(FormatDate(m.Date)),
		"maintainance_title":       encodeOptString(m.Title),
		"maintainance_report_link": encodeOptString(m.ReportLink),
		"maintainance_st_link":     encodeOptString(m.STLink),
	}, nil
}

func (m MaintenanceReport) IdentityHash() (uint64, error) {
	return ir.HashValue(TagMaintenanceReport + "\x00" + FormatDate(m.Date) +
		"\x00" + m.Title + "\x00" + m.ReportLink + "\x00" + m.STLink)
}

func decodeMaintenanceReport(fields map[string]any) (any, error) {
	return NewMaintenanceReport(
		decodeOptString(fields["maintainance_date"]),
		decodeOptString(fields["maintainance_title"]),
		decodeOptString(fields["maintainance_report_link"]),
		decodeOptString(fields["maintainance_st_link"]),
	)
}

// Reference is a directed link between certificates.
type Reference struct {
	CertID string
	Source string
}

func NewReference(certID, source string) Reference {
	return Reference{CertID: SanitizeString(certID), Source: source}
}

func (r Reference) SerialTag() string { return TagReference }

func (r Reference) Encode() (map[string]any, error) {
	return map[string]any{
		"cert_id": r.CertID,
		"source":  r.Source,
	}, nil
}

func (r Reference) IdentityHash() (uint64, error) {
	return ir.HashValue(TagReference + "\x00" + r.CertID + "\x00" + r.Source)
}

func decodeReference(fields map[string]any) (any, error) {
	return NewReference(
		decodeOptString(fields["cert_id"]),
		decodeOptString(fields["source"]),
	), nil
}

func encodeOptString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func decodeOptString(v any) string {
	s, _ := v.(string)
	return s
}
