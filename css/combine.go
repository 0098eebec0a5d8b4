package css

// Renderer is anything that renders to CSS selector text. Both
// Selector and the values returned by Combine implement it.
type Renderer interface {
	Render() (string, error)
}

// Combinator joins two selectors in a combined selector.
type Combinator string

// The four CSS combinators.
const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

var _ Renderer = (*combined)(nil)

// combined renders as "<left> <combinator> <right>". It references its
// operands and never mutates them.
type combined struct {
	left  Renderer
	comb  Combinator
	right Renderer
}

// Combine joins two renderable selectors with a combinator token. A
// single literal space goes on each side of the token, also when the
// token is the descendant space itself, which renders the two operands
// three spaces apart. The result is a Renderer, so combinations nest.
func Combine(left Renderer, comb Combinator, right Renderer) Renderer {
	return &combined{left: left, comb: comb, right: right}
}

// Render renders both operands and joins them around the combinator.
// The first operand error aborts the render.
func (c *combined) Render() (string, error) {
	l, err := c.left.Render()
	if err != nil {
		return "", err
	}
	r, err := c.right.Render()
	if err != nil {
		return "", err
	}
	return l + " " + string(c.comb) + " " + r, nil
}

// String returns the rendered text, or "" when either operand failed.
func (c *combined) String() string {
	text, _ := c.Render()
	return text
}

// Specificity sums the operand specificities. Operands that do not
// report one count as zero.
func (c *combined) Specificity() Specificity {
	var sp Specificity
	if w, ok := c.left.(interface{ Specificity() Specificity }); ok {
		sp = sp.Add(w.Specificity())
	}
	if w, ok := c.right.(interface{ Specificity() Specificity }); ok {
		sp = sp.Add(w.Specificity())
	}
	return sp
}
