package history

import (
	"golang.org/x/text/language"
)

// Tracked field keys. Their display labels come from a Catalog.
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldPreconditions    = "preconditions"
	FieldSteps            = "steps"
	FieldExpectedResult   = "expected_result"
	FieldStatus           = "status"
	FieldPriority         = "priority"
	FieldSeverity         = "severity"
	FieldAssignedTo       = "assigned_to"
	FieldMonth            = "month"
	FieldSprint           = "sprint"
	FieldStoryID          = "story_id"
	FieldStepsToReproduce = "steps_to_reproduce"
	FieldExpectedBehavior = "expected_behavior"
	FieldActualBehavior   = "actual_behavior"
)

const unassignedKey = "unassigned"

var supported = []language.Tag{
	language.Spanish, // first entry is the fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.Spanish: {
		FieldTitle:            "Título",
		FieldDescription:      "Descripción",
		FieldPreconditions:    "Precondiciones",
		FieldSteps:            "Pasos",
		FieldExpectedResult:   "Resultado esperado",
		FieldStatus:           "Estado",
		FieldPriority:         "Prioridad",
		FieldSeverity:         "Severidad",
		FieldAssignedTo:       "Asignado a",
		FieldMonth:            "Mes",
		FieldSprint:           "Sprint",
		FieldStoryID:          "Historia de usuario",
		FieldStepsToReproduce: "Pasos para reproducir",
		FieldExpectedBehavior: "Comportamiento esperado",
		FieldActualBehavior:   "Comportamiento actual",
		unassignedKey:         "Sin asignar",
	},
	language.English: {
		FieldTitle:            "Title",
		FieldDescription:      "Description",
		FieldPreconditions:    "Preconditions",
		FieldSteps:            "Steps",
		FieldExpectedResult:   "Expected result",
		FieldStatus:           "Status",
		FieldPriority:         "Priority",
		FieldSeverity:         "Severity",
		FieldAssignedTo:       "Assigned to",
		FieldMonth:            "Month",
		FieldSprint:           "Sprint",
		FieldStoryID:          "User story",
		FieldStepsToReproduce: "Steps to reproduce",
		FieldExpectedBehavior: "Expected behavior",
		FieldActualBehavior:   "Actual behavior",
		unassignedKey:         "Unassigned",
	},
}

// Catalog resolves field keys to the labels stored in history rows
type Catalog struct {
	tag    language.Tag
	labels map[string]string
}

// NewCatalog picks the closest supported language for a BCP 47 tag such as "es", "en-GB"
// or "es-AR". Unparseable tags get the Spanish catalog.
func NewCatalog(lang string) *Catalog {
	tag := supported[0]
	if parsed, err := language.Parse(lang); err == nil {
		_, idx, _ := matcher.Match(parsed)
		tag = supported[idx]
	}
	return &Catalog{tag: tag, labels: catalogs[tag]}
}

// Language returns the tag the catalog was resolved to
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Label returns the display label of a field key, or the key itself when unknown
func (c *Catalog) Label(field string) string {
	if label, ok := c.labels[field]; ok {
		return label
	}
	return field
}

// Unassigned is the text recorded for an empty assignee
func (c *Catalog) Unassigned() string {
	return c.labels[unassignedKey]
}
