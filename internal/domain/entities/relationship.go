package entities

// EventType classifies an event as beneficial, harmful, or neither.
type EventType string

const (
	EventPositive EventType = "positive"
	EventNegative EventType = "negative"
	EventNeutral  EventType = "neutral"
)

// Health score bounds. Every health mutation is clamped to this range,
// inclusive on both ends.
const (
	MinHealth = -100
	MaxHealth = 100
)

// DefaultHealth is the starting score for a fresh mutual relationship.
const DefaultHealth = 50

// ClampHealth bounds a health score to [MinHealth, MaxHealth].
func ClampHealth(score int) int {
	if score < MinHealth {
		return MinHealth
	}
	if score > MaxHealth {
		return MaxHealth
	}
	return score
}

// RelationshipEvent is a dated occurrence recorded against a single
// relationship. Events are immutable and append-only; the stored Impact is
// the raw requested delta, which can diverge from the effective health change
// when clamping kicks in at the bounds.
type RelationshipEvent struct {
	ID          string    `json:"id" yaml:"id"`
	Type        EventType `json:"type" yaml:"type"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description" yaml:"description"`
	Impact      int       `json:"impact" yaml:"impact"`
	Date        string    `json:"date" yaml:"date"` // ISO 8601 date, no time component
	Image       string    `json:"image,omitempty" yaml:"image,omitempty"`

	// ChangesRelationshipTo, when non-empty, retypes the relationship as a
	// side effect of recording the event.
	ChangesRelationshipTo string `json:"changes_relationship_to,omitempty" yaml:"changes_relationship_to,omitempty"`
}

// Relationship connects two people. Pair identity is unordered: (A,B) and
// (B,A) name the same relationship. The directional overlay fields are only
// set for relationships created as asymmetric; otherwise the symmetric Type
// and HealthScore are authoritative.
type Relationship struct {
	ID          string              `json:"id" yaml:"id"`
	Person1ID   string              `json:"person1_id" yaml:"person1_id"`
	Person2ID   string              `json:"person2_id" yaml:"person2_id"`
	Type        string              `json:"type" yaml:"type"`
	HealthScore int                 `json:"health_score" yaml:"health_score"`
	Events      []RelationshipEvent `json:"events" yaml:"events"`

	// Directional overlay: how each party perceives the other.
	P1ToP2Type   string `json:"p1_to_p2_type,omitempty" yaml:"p1_to_p2_type,omitempty"`
	P2ToP1Type   string `json:"p2_to_p1_type,omitempty" yaml:"p2_to_p1_type,omitempty"`
	P1ToP2Health *int   `json:"p1_to_p2_health,omitempty" yaml:"p1_to_p2_health,omitempty"`
	P2ToP1Health *int   `json:"p2_to_p1_health,omitempty" yaml:"p2_to_p1_health,omitempty"`
}

// Involves reports whether the person participates in this relationship.
func (r *Relationship) Involves(personID string) bool {
	return r.Person1ID == personID || r.Person2ID == personID
}

// Matches reports whether this relationship connects the given unordered pair.
func (r *Relationship) Matches(a, b string) bool {
	return (r.Person1ID == a && r.Person2ID == b) || (r.Person1ID == b && r.Person2ID == a)
}
