package model

import (
	"strings"

	"github.com/swatchfile/swatch/internal/color"
)

// MaxColors is the hard cap on collection size. The whole collection is
// the unit of persistence, so this also bounds every snapshot.
const MaxColors = 15

// ColorRecord is one stored swatch. Index is derived: after every save it
// equals the record's array position, so it is never an independent sort
// key.
type ColorRecord struct {
	Index int       `json:"index"`
	Name  string    `json:"name"`
	RGB   color.RGB `json:"rgb"`
}

// IsValid reports whether a parsed record is structurally sound: a
// non-negative index, a non-empty name, and channels already in range.
// Records failing this are dropped on load, never coerced.
func (c ColorRecord) IsValid() bool {
	if c.Index < 0 {
		return false
	}
	if strings.TrimSpace(c.Name) == "" {
		return false
	}
	for _, ch := range []int{c.RGB.R, c.RGB.G, c.RGB.B} {
		if ch < 0 || ch > 255 {
			return false
		}
	}
	return true
}

// NameEquals reports whether the record's name matches other
// case-insensitively after trimming. Name uniqueness across the
// collection is defined in these terms.
func (c ColorRecord) NameEquals(other string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(other))
}

// DefaultColors returns the built-in swatches written to a fresh store
// and returned in-memory when a file yields no valid records.
func DefaultColors() []ColorRecord {
	return []ColorRecord{
		{Index: 0, Name: "Primary Red", RGB: color.RGB{R: 255, G: 90, B: 90}},
		{Index: 1, Name: "Ocean Blue", RGB: color.RGB{R: 52, G: 152, B: 219}},
		{Index: 2, Name: "Forest Green", RGB: color.RGB{R: 46, G: 204, B: 113}},
		{Index: 3, Name: "Sunset Orange", RGB: color.RGB{R: 230, G: 126, B: 34}},
		{Index: 4, Name: "Purple Accent", RGB: color.RGB{R: 155, G: 89, B: 182}},
	}
}

// CloneRecords returns a deep copy of the collection. History and cache
// hand out snapshots, never aliased slices.
func CloneRecords(records []ColorRecord) []ColorRecord {
	if records == nil {
		return nil
	}
	out := make([]ColorRecord, len(records))
	copy(out, records)
	return out
}

// Reindex rewrites every record's Index to its array position.
func Reindex(records []ColorRecord) []ColorRecord {
	for i := range records {
		records[i].Index = i
	}
	return records
}
