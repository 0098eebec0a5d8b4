package css

import "fmt"

// Part identifies one category of a compound selector. The numeric
// order is the append priority: parts may only be added in
// non-decreasing Part order.
type Part int

const (
	PartElement Part = iota
	PartID
	PartClass
	PartAttribute
	PartPseudoClass
	PartPseudoElement
)

// String returns the part name as used in error messages.
func (p Part) String() string {
	switch p {
	case PartElement:
		return "element"
	case PartID:
		return "id"
	case PartClass:
		return "class"
	case PartAttribute:
		return "attribute"
	case PartPseudoClass:
		return "pseudo-class"
	case PartPseudoElement:
		return "pseudo-element"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}
