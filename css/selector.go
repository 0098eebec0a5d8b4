package css

import "strings"

// Selector builds a single compound selector part by part. Methods
// append parts and return the receiver, so calls chain:
//
//	css.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//
// Element, ID and PseudoElement may each be set once; Class, Attr and
// PseudoClass repeat. Parts must arrive in category order (Part). A
// call that breaks either rule records the error and leaves the parts
// untouched; from then on every call is a no-op and Render reports the
// first failure.
//
// The zero value is an empty selector ready for use.
type Selector struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	last Part // highest category appended so far
	err  error
}

var _ Renderer = (*Selector)(nil)

// New returns an empty selector.
func New() *Selector {
	return &Selector{}
}

// Element starts a selector chain with an element part.
func Element(name string) *Selector { return New().Element(name) }

// ID starts a selector chain with an id part.
func ID(name string) *Selector { return New().ID(name) }

// Class starts a selector chain with a class part.
func Class(name string) *Selector { return New().Class(name) }

// Attr starts a selector chain with an attribute part.
func Attr(raw string) *Selector { return New().Attr(raw) }

// PseudoClass starts a selector chain with a pseudo-class part.
func PseudoClass(name string) *Selector { return New().PseudoClass(name) }

// PseudoElement starts a selector chain with a pseudo-element part.
func PseudoElement(name string) *Selector { return New().PseudoElement(name) }

// Element sets the element part. Renders verbatim.
func (s *Selector) Element(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.element != "" {
		s.err = &DuplicateError{Part: PartElement}
		return s
	}
	if s.last > PartElement {
		s.err = &OrderError{Part: PartElement, After: s.last}
		return s
	}
	s.element = name
	s.last = PartElement
	return s
}

// ID sets the id part. Renders as "#" + name.
func (s *Selector) ID(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.id != "" {
		s.err = &DuplicateError{Part: PartID}
		return s
	}
	if s.last > PartID {
		s.err = &OrderError{Part: PartID, After: s.last}
		return s
	}
	s.id = name
	s.last = PartID
	return s
}

// Class appends a class part. Renders as "." + name.
func (s *Selector) Class(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.last > PartClass {
		s.err = &OrderError{Part: PartClass, After: s.last}
		return s
	}
	s.classes = append(s.classes, name)
	s.last = PartClass
	return s
}

// Attr appends an attribute part. The raw text goes between the
// brackets verbatim, quoting included, e.g. `href$=".png"` renders as
// `[href$=".png"]`.
func (s *Selector) Attr(raw string) *Selector {
	if s.err != nil {
		return s
	}
	if s.last > PartAttribute {
		s.err = &OrderError{Part: PartAttribute, After: s.last}
		return s
	}
	s.attributes = append(s.attributes, raw)
	s.last = PartAttribute
	return s
}

// PseudoClass appends a pseudo-class part. Renders as ":" + name.
func (s *Selector) PseudoClass(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.last > PartPseudoClass {
		s.err = &OrderError{Part: PartPseudoClass, After: s.last}
		return s
	}
	s.pseudoClasses = append(s.pseudoClasses, name)
	s.last = PartPseudoClass
	return s
}

// PseudoElement sets the pseudo-element part. Renders as "::" + name.
func (s *Selector) PseudoElement(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.pseudoElement != "" {
		s.err = &DuplicateError{Part: PartPseudoElement}
		return s
	}
	if s.last > PartPseudoElement {
		s.err = &OrderError{Part: PartPseudoElement, After: s.last}
		return s
	}
	s.pseudoElement = name
	s.last = PartPseudoElement
	return s
}

// Err returns the first error recorded by the chain, if any.
func (s *Selector) Err() error {
	return s.err
}

// Empty reports whether the selector has no parts.
func (s *Selector) Empty() bool {
	return s.element == "" && s.id == "" && s.pseudoElement == "" &&
		len(s.classes) == 0 && len(s.attributes) == 0 && len(s.pseudoClasses) == 0
}

// Render returns the selector text in canonical category order:
// element, "#" + id, classes, attributes, pseudo-classes and the
// pseudo-element, with no separators in between. Absent parts are
// omitted; an empty selector renders "". When the chain carries an
// error Render returns it instead.
func (s *Selector) Render() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var b strings.Builder
	b.WriteString(s.element)
	if s.id != "" {
		b.WriteByte('#')
		b.WriteString(s.id)
	}
	for _, c := range s.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, a := range s.attributes {
		b.WriteByte('[')
		b.WriteString(a)
		b.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
	return b.String(), nil
}

// String returns the rendered selector, or "" when the chain carries
// an error.
func (s *Selector) String() string {
	text, _ := s.Render()
	return text
}

// Specificity returns the cascade specificity of the selector. A chain
// that carries an error reports zero specificity.
func (s *Selector) Specificity() Specificity {
	if s.err != nil {
		return Specificity{}
	}
	var sp Specificity
	if s.id != "" {
		sp[0]++
	}
	sp[1] = len(s.classes) + len(s.attributes) + len(s.pseudoClasses)
	if s.element != "" {
		sp[2]++
	}
	if s.pseudoElement != "" {
		sp[2]++
	}
	return sp
}
