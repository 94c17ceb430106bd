package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDiffProducesOneChangePerDifferentField(t *testing.T) {
	r := NewRecorder("es")
	fields := []string{FieldStatus, FieldPriority, FieldSeverity}

	before := Snapshot{FieldStatus: "open", FieldPriority: "medium", FieldSeverity: "minor"}
	after := Snapshot{FieldStatus: "resolved", FieldPriority: "medium", FieldSeverity: "major"}

	changes := r.Diff(fields, before, after)

	require.Len(t, changes, 2)
	assert.Equal(t, Change{Field: FieldStatus, Label: "Estado", OldValue: "open", NewValue: "resolved"}, changes[0])
	assert.Equal(t, Change{Field: FieldSeverity, Label: "Severidad", OldValue: "minor", NewValue: "major"}, changes[1])
}

func TestDiffEqualSnapshotsProduceNothing(t *testing.T) {
	r := NewRecorder("es")
	snap := Snapshot{FieldTitle: "Login", FieldStoryID: "12"}

	assert.Empty(t, r.Diff([]string{FieldTitle, FieldStoryID}, snap, snap))
}

func TestDiffIgnoresUntrackedFields(t *testing.T) {
	r := NewRecorder("es")
	before := Snapshot{FieldTitle: "a", "internal": "x"}
	after := Snapshot{FieldTitle: "a", "internal": "y"}

	assert.Empty(t, r.Diff([]string{FieldTitle}, before, after))
}

func TestDiffIsStrictOnTextForm(t *testing.T) {
	r := NewRecorder("es")
	zero := 0

	// An unset story id and an explicit zero render differently and are flagged.
	changes := r.Diff([]string{FieldStoryID}, Snapshot{FieldStoryID: Int(nil)}, Snapshot{FieldStoryID: Int(&zero)})

	require.Len(t, changes, 1)
	assert.Equal(t, "", changes[0].OldValue)
	assert.Equal(t, "0", changes[0].NewValue)
}

func TestStepListsCompareSerialized(t *testing.T) {
	type step struct {
		Action   string `json:"action"`
		Expected string `json:"expected"`
	}
	r := NewRecorder("es")
	oldSteps := []step{{"open page", "page loads"}, {"click login", "form shows"}}
	reordered := []step{{"click login", "form shows"}, {"open page", "page loads"}}

	changes := r.Diff([]string{FieldSteps},
		Snapshot{FieldSteps: JSON(oldSteps)},
		Snapshot{FieldSteps: JSON(reordered)})

	require.Len(t, changes, 1)
	assert.Equal(t, "Pasos", changes[0].Label)
	assert.Equal(t, `[{"action":"open page","expected":"page loads"},{"action":"click login","expected":"form shows"}]`, changes[0].OldValue)

	assert.Empty(t, r.Diff([]string{FieldSteps},
		Snapshot{FieldSteps: JSON(oldSteps)},
		Snapshot{FieldSteps: JSON(oldSteps)}))
}

func TestAssignee(t *testing.T) {
	r := NewRecorder("es")
	id := uuid.New()

	assert.Equal(t, "Sin asignar", r.Assignee(nil))
	nilID := uuid.Nil
	assert.Equal(t, "Sin asignar", r.Assignee(&nilID))
	assert.Equal(t, id.String(), r.Assignee(&id))

	assert.Equal(t, "Unassigned", NewRecorder("en").Assignee(nil))
}

func TestCatalogLanguageMatching(t *testing.T) {
	tests := []struct {
		lang      string
		wantLabel string
		wantBase  string
	}{
		{"es", "Estado", "es"},
		{"es-AR", "Estado", "es"},
		{"en", "Status", "en"},
		{"en-GB", "Status", "en"},
		{"de", "Estado", "es"},
		{"", "Estado", "es"},
		{"!!", "Estado", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c := NewCatalog(tt.lang)
			assert.Equal(t, tt.wantLabel, c.Label(FieldStatus))
			base, _ := c.Language().Base()
			want, _ := language.Make(tt.wantBase).Base()
			assert.Equal(t, want, base)
		})
	}
}

func TestCatalogUnknownFieldFallsBackToKey(t *testing.T) {
	assert.Equal(t, "custom_field", NewCatalog("es").Label("custom_field"))
}
