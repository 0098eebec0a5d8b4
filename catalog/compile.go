package catalog

import (
	"fmt"

	"github.com/google/uuid"
	tdcss "github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/css"
)

// Entry is one compiled, named selector.
type Entry struct {
	Name        string
	Selector    css.Renderer
	Rendered    string
	Specificity css.Specificity
}

// Build is the compiled form of a Document.
type Build struct {
	ID       string
	Name     string
	Entries  []Entry
	Warnings []string

	index      map[string]int
	rules      []*css.Rule
	referenced map[string]bool
}

// Compile builds every selector, resolves combinations and rules and
// collects identifier lint warnings. Problems are aggregated so one
// pass reports everything wrong with a catalog.
func (d *Document) Compile(log *zap.Logger) (*Build, error) {
	log = log.Named("compile")

	b := &Build{
		Name:       d.Name,
		index:      make(map[string]int),
		referenced: make(map[string]bool),
	}

	var refID uuid.UUID
	if _, err := uuid.Parse(d.ID); err != nil {
		if refID, err = uuid.NewV7(); err != nil {
			return nil, fmt.Errorf("unable to generate catalog id: %w", err)
		}
		if d.ID != "" {
			log.Warn("Catalog has invalid ID, correcting", zap.String("old_id", d.ID), zap.Stringer("new_id", refID))
		}
	}
	b.ID = d.ID
	if refID != uuid.Nil {
		b.ID = refID.String()
	}

	var errs error
	for _, def := range d.Selectors {
		sel := buildSelector(def)
		if sel.Empty() && sel.Err() == nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q has no parts", def.Name))
			continue
		}
		if err := b.add(def.Name, sel); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		b.lint(def)
	}

	for _, comb := range d.Combined {
		op, err := parseCombinator(comb.Op)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("combination %q: %w", comb.Name, err))
			continue
		}
		left, ok := b.Entry(comb.Left)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("combination %q references unknown selector %q", comb.Name, comb.Left))
			continue
		}
		right, ok := b.Entry(comb.Right)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("combination %q references unknown selector %q", comb.Name, comb.Right))
			continue
		}
		if err := b.add(comb.Name, css.Combine(left.Selector, op, right.Selector)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	for _, rd := range d.Rules {
		ent, ok := b.Entry(rd.Selector)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("rule references unknown selector %q", rd.Selector))
			continue
		}
		b.referenced[rd.Selector] = true

		var decls []css.Declaration
		for _, dd := range rd.Declarations {
			decls = append(decls, css.Declaration{Property: dd.Property, Value: dd.Value})
		}
		b.rules = append(b.rules, &css.Rule{Selector: ent.Selector, Declarations: decls})
	}

	if errs != nil {
		return nil, fmt.Errorf("unable to compile catalog: %w", errs)
	}

	log.Debug("Catalog compiled",
		zap.String("id", b.ID),
		zap.Int("entries", len(b.Entries)),
		zap.Int("rules", len(b.rules)),
		zap.Int("warnings", len(b.Warnings)))
	return b, nil
}

// Entry returns the compiled entry with the given name.
func (b *Build) Entry(name string) (Entry, bool) {
	i, ok := b.index[name]
	if !ok {
		return Entry{}, false
	}
	return b.Entries[i], true
}

// Stylesheet assembles the build into a stylesheet. Rules keep their
// document order; with scaffold set, entries no rule references are
// appended as empty rules so the output names every selector.
func (b *Build) Stylesheet(header string, scaffold bool) *css.Stylesheet {
	rules := make([]*css.Rule, 0, len(b.rules)+len(b.Entries))
	rules = append(rules, b.rules...)
	if scaffold {
		for _, ent := range b.Entries {
			if !b.referenced[ent.Name] {
				rules = append(rules, &css.Rule{Selector: ent.Selector})
			}
		}
	}
	return &css.Stylesheet{Header: header, Rules: rules}
}

func (b *Build) add(name string, sel css.Renderer) error {
	if name == "" {
		return fmt.Errorf("selector without a name")
	}
	if _, dup := b.index[name]; dup {
		return fmt.Errorf("duplicate selector name %q", name)
	}

	rendered, err := sel.Render()
	if err != nil {
		return fmt.Errorf("unable to build selector %q: %w", name, err)
	}

	ent := Entry{Name: name, Selector: sel, Rendered: rendered}
	if w, ok := sel.(interface{ Specificity() css.Specificity }); ok {
		ent.Specificity = w.Specificity()
	}

	b.index[name] = len(b.Entries)
	b.Entries = append(b.Entries, ent)
	return nil
}

// lint flags part values that are not valid CSS identifiers. Attribute
// and pseudo-class text is free form and stays unchecked.
func (b *Build) lint(def Definition) {
	check := func(kind, value string) {
		if value == "" {
			return
		}
		if !tdcss.IsIdent([]byte(value)) {
			b.Warnings = append(b.Warnings, fmt.Sprintf("selector %q: %s %q is not a valid CSS identifier", def.Name, kind, value))
		}
	}

	check("element", def.Element)
	check("id", def.ID)
	for _, c := range def.Classes {
		check("class", c)
	}
	check("pseudo-element", def.PseudoElement)
}

func buildSelector(def Definition) *css.Selector {
	sel := css.New()
	if def.Element != "" {
		sel.Element(def.Element)
	}
	if def.ID != "" {
		sel.ID(def.ID)
	}
	for _, c := range def.Classes {
		sel.Class(c)
	}
	for _, a := range def.Attributes {
		sel.Attr(a)
	}
	for _, p := range def.PseudoClasses {
		sel.PseudoClass(p)
	}
	if def.PseudoElement != "" {
		sel.PseudoElement(def.PseudoElement)
	}
	return sel
}

func parseCombinator(op string) (css.Combinator, error) {
	switch op {
	case " ":
		return css.Descendant, nil
	case ">":
		return css.Child, nil
	case "+":
		return css.AdjacentSibling, nil
	case "~":
		return css.GeneralSibling, nil
	default:
		return "", fmt.Errorf("unsupported combinator %q", op)
	}
}
