// Package history computes audit entries from before/after snapshots of an entity.
package history

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// Snapshot holds the text form of every tracked field of one entity version
type Snapshot map[string]string

// Change is one field whose text form differs between two snapshots
type Change struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// Recorder diffs snapshots and labels the result
type Recorder struct {
	catalog *Catalog
}

// NewRecorder creates a recorder whose labels use the given language
func NewRecorder(lang string) *Recorder {
	return &Recorder{catalog: NewCatalog(lang)}
}

// Catalog exposes the label catalogue in use
func (r *Recorder) Catalog() *Catalog {
	return r.catalog
}

// Diff walks fields in order and returns one Change per field whose values differ.
// Comparison is strict string inequality, so callers must render both snapshots
// with the same helpers.
func (r *Recorder) Diff(fields []string, before, after Snapshot) []Change {
	var changes []Change
	for _, field := range fields {
		oldValue := before[field]
		newValue := after[field]
		if oldValue == newValue {
			continue
		}
		changes = append(changes, Change{
			Field:    field,
			Label:    r.catalog.Label(field),
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	return changes
}

// Int renders an optional integer; nil becomes the empty string
func Int(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// JSON renders structured values such as step lists in their serialized form
func JSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// Assignee renders an optional user reference, using the catalogue's
// unassigned label for nil
func (r *Recorder) Assignee(id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return r.catalog.Unassigned()
	}
	return id.String()
}
