package entities

// EventCategory is a static catalog entry describing a kind of event: its
// classification, the impact applied when the caller does not override it,
// and optionally the relationship type the event transitions to.
type EventCategory struct {
	Name                  string    `json:"name" yaml:"name"`
	Type                  EventType `json:"type" yaml:"type"`
	DefaultImpact         int       `json:"default_impact" yaml:"default_impact"`
	ChangesRelationshipTo string    `json:"changes_relationship_to,omitempty" yaml:"changes_relationship_to,omitempty"`
}

// DefaultEventCategories are the built-in event categories. They are fixed
// data, never mutated at runtime; user config can append to them but not
// remove them.
var DefaultEventCategories = []EventCategory{
	{Name: "Fight", Type: EventNegative, DefaultImpact: -15},
	{Name: "Argument", Type: EventNegative, DefaultImpact: -8},
	{Name: "Betrayal", Type: EventNegative, DefaultImpact: -25},
	{Name: "Neglect", Type: EventNegative, DefaultImpact: -5},
	{Name: "Lie", Type: EventNegative, DefaultImpact: -12},
	{Name: "Gift", Type: EventPositive, DefaultImpact: 10},
	{Name: "Support", Type: EventPositive, DefaultImpact: 12},
	{Name: "Quality Time", Type: EventPositive, DefaultImpact: 8},
	{Name: "Apology", Type: EventPositive, DefaultImpact: 15},
	{Name: "Celebration", Type: EventPositive, DefaultImpact: 10},
	{Name: "Trip Together", Type: EventPositive, DefaultImpact: 18},
	{Name: "Achievement", Type: EventPositive, DefaultImpact: 7},
	{Name: "Marriage", Type: EventPositive, DefaultImpact: 25, ChangesRelationshipTo: "Marriage"},
	{Name: "Engagement", Type: EventPositive, DefaultImpact: 20, ChangesRelationshipTo: "Engaged"},
	{Name: "Divorce", Type: EventNegative, DefaultImpact: -30, ChangesRelationshipTo: "Ex"},
	{Name: "Breakup", Type: EventNegative, DefaultImpact: -20, ChangesRelationshipTo: "Ex"},
	{Name: "Reconciliation", Type: EventPositive, DefaultImpact: 15, ChangesRelationshipTo: "Partner"},
	{Name: "Became Friends", Type: EventPositive, DefaultImpact: 10, ChangesRelationshipTo: "Friend"},
	{Name: "Became Best Friends", Type: EventPositive, DefaultImpact: 15, ChangesRelationshipTo: "Best Friend"},
	{Name: "Started Dating", Type: EventPositive, DefaultImpact: 15, ChangesRelationshipTo: "Partner"},
}

// DefaultRelationshipTypes is the suggested relationship vocabulary. The
// Type field on Relationship is an open string; custom values are permitted.
var DefaultRelationshipTypes = []string{
	"Marriage",
	"Engaged",
	"Partner",
	"Family",
	"Friend",
	"Best Friend",
	"Colleague",
	"Acquaintance",
	"Ex",
	"Estranged",
}

// FindCategory looks up a category by name in the given catalog.
// Returns nil when the name is unknown.
func FindCategory(catalog []EventCategory, name string) *EventCategory {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}

// IsDefaultCategory checks if a category name is a built-in default.
func IsDefaultCategory(name string) bool {
	return FindCategory(DefaultEventCategories, name) != nil
}
