package services

import "github.com/mkorcha/tangle/internal/domain/entities"

// Catalog is the static event-category and relationship-type vocabulary.
// Built-in entries always come first; user config may append custom entries
// but can never remove built-ins. Read-only after construction.
type Catalog struct {
	categories        []entities.EventCategory
	relationshipTypes []string
}

// NewCatalog builds a catalog from the built-in tables plus user extensions.
// Extra categories shadowing a built-in name are dropped; extra relationship
// types are deduplicated.
func NewCatalog(extraCategories []entities.EventCategory, extraRelationshipTypes []string) *Catalog {
	c := &Catalog{
		categories:        append([]entities.EventCategory(nil), entities.DefaultEventCategories...),
		relationshipTypes: append([]string(nil), entities.DefaultRelationshipTypes...),
	}

	for _, cat := range extraCategories {
		if cat.Name == "" || entities.FindCategory(c.categories, cat.Name) != nil {
			continue
		}
		c.categories = append(c.categories, cat)
	}

	known := make(map[string]bool, len(c.relationshipTypes))
	for _, t := range c.relationshipTypes {
		known[t] = true
	}
	for _, t := range extraRelationshipTypes {
		if t == "" || known[t] {
			continue
		}
		known[t] = true
		c.relationshipTypes = append(c.relationshipTypes, t)
	}

	return c
}

// Categories returns the full event category table.
func (c *Catalog) Categories() []entities.EventCategory {
	out := make([]entities.EventCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// RelationshipTypes returns the suggested relationship type vocabulary.
// Relationship types are an open set; values outside this list are permitted.
func (c *Catalog) RelationshipTypes() []string {
	out := make([]string, len(c.relationshipTypes))
	copy(out, c.relationshipTypes)
	return out
}

// Category looks up a catalog entry by name. Returns nil for unknown names;
// an unknown category is not an error, it just carries no defaults.
func (c *Catalog) Category(name string) *entities.EventCategory {
	return entities.FindCategory(c.categories, name)
}
