package entities

// Person is a node in the social network. Position is assigned at creation
// for the benefit of graph renderers; the core never reads it back.
type Person struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Avatar string  `json:"avatar,omitempty" yaml:"avatar,omitempty"` // URL or base64 image, opaque to the core
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
}
