package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair inside a rule.
type Declaration struct {
	Property string
	Value    string
}

// Rule pairs a renderable selector with its declarations.
type Rule struct {
	Selector     Renderer
	Declarations []Declaration
}

// WriteTo writes the rule as CSS text. Declarations keep their given
// order.
func (r *Rule) WriteTo(w io.Writer) (int64, error) {
	sel, err := r.Selector.Render()
	if err != nil {
		return 0, fmt.Errorf("unable to render rule selector: %w", err)
	}

	var total int64
	n, err := fmt.Fprintf(w, "%s {\n", sel)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, d := range r.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += int64(n)
	return total, err
}

// Stylesheet is an ordered list of rules with an optional header
// comment.
type Stylesheet struct {
	Header string
	Rules  []*Rule
}

// WriteTo writes the stylesheet as CSS text, implementing io.WriterTo.
// A non-empty Header goes first as a comment block; rules are
// separated by blank lines.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if s.Header != "" {
		n, err := fmt.Fprintf(w, "/* %s */\n\n", s.Header)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for i, rule := range s.Rules {
		n, err := rule.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			m, err := fmt.Fprint(w, "\n")
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
