package entities

// Impact is the signed health-score delta a network event applies to one
// specific relationship. Auto marks impacts derived from participant pairing,
// as opposed to relationships attached manually by the caller.
type Impact struct {
	RelationshipID string `json:"relationship_id" yaml:"relationship_id"`
	Impact         int    `json:"impact" yaml:"impact"`
	Reason         string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Auto           bool   `json:"auto" yaml:"auto"`
}

// NetworkEvent is a shared occurrence involving multiple people at once.
// Its impacts are computed up front and applied atomically at creation; the
// event itself is the durable record of what happened. Network events form a
// second ledger alongside each relationship's own event history: both feed
// the same health score, but they are stored and queried separately, and a
// network event never appears in a relationship's Events sequence.
type NetworkEvent struct {
	ID           string    `json:"id" yaml:"id"`
	Type         EventType `json:"type" yaml:"type"`
	Category     string    `json:"category" yaml:"category"`
	Description  string    `json:"description" yaml:"description"`
	Date         string    `json:"date" yaml:"date"`
	Image        string    `json:"image,omitempty" yaml:"image,omitempty"`
	Participants []string  `json:"participants" yaml:"participants"`
	Impacts      []Impact  `json:"impacts" yaml:"impacts"`
}

// HasParticipant reports whether the person is among the event's participants.
func (e *NetworkEvent) HasParticipant(personID string) bool {
	for _, id := range e.Participants {
		if id == personID {
			return true
		}
	}
	return false
}

// Affects reports whether any impact entry names the relationship.
func (e *NetworkEvent) Affects(relationshipID string) bool {
	for i := range e.Impacts {
		if e.Impacts[i].RelationshipID == relationshipID {
			return true
		}
	}
	return false
}
