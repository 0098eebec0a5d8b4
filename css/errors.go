package css

import "fmt"

// DuplicateError reports a second occurrence of a selector part that
// may appear only once per compound selector: element, id or
// pseudo-element.
type DuplicateError struct {
	Part Part
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("css: duplicate %s in selector", e.Part)
}

// OrderError reports a selector part appended after a part of a higher
// category. Parts must arrive in element, id, class, attribute,
// pseudo-class, pseudo-element order.
type OrderError struct {
	Part  Part // the part that was appended
	After Part // the highest category already present
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("css: %s cannot follow %s in selector", e.Part, e.After)
}
