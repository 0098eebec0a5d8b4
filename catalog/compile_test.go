package catalog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cssel/catalog"
	"cssel/css"
)

func testDocument() *catalog.Document {
	return &catalog.Document{
		Version: 1,
		Name:    "site navigation",
		Selectors: []catalog.Definition{
			{Name: "menu", Element: "ul", Classes: []string{"nav"}},
			{Name: "item", Element: "li", PseudoClasses: []string{"first-child"}},
			{Name: "link", Element: "a", Attributes: []string{`href^="/"`}},
		},
		Combined: []catalog.Combination{
			{Name: "menu-item", Left: "menu", Op: ">", Right: "item"},
			{Name: "menu-link", Left: "menu-item", Op: " ", Right: "link"},
		},
		Rules: []catalog.RuleDef{
			{
				Selector:     "menu-item",
				Declarations: []catalog.Declaration{{Property: "margin", Value: "0"}},
			},
		},
	}
}

func TestCompile(t *testing.T) {
	b, err := testDocument().Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	wantRendered := map[string]string{
		"menu":      "ul.nav",
		"item":      "li:first-child",
		"link":      `a[href^="/"]`,
		"menu-item": "ul.nav > li:first-child",
		"menu-link": "ul.nav > li:first-child   " + `a[href^="/"]`,
	}
	if len(b.Entries) != len(wantRendered) {
		t.Fatalf("Compile() entries = %d, want %d", len(b.Entries), len(wantRendered))
	}
	for name, want := range wantRendered {
		ent, ok := b.Entry(name)
		if !ok {
			t.Fatalf("Entry(%q) not found", name)
		}
		if ent.Rendered != want {
			t.Errorf("Entry(%q).Rendered = %q, want %q", name, ent.Rendered, want)
		}
	}

	// Entries keep definition order.
	order := []string{"menu", "item", "link", "menu-item", "menu-link"}
	for i, name := range order {
		if b.Entries[i].Name != name {
			t.Errorf("Entries[%d].Name = %q, want %q", i, b.Entries[i].Name, name)
		}
	}

	if ent, _ := b.Entry("menu-item"); ent.Specificity != (css.Specificity{0, 2, 2}) {
		t.Errorf("menu-item specificity = %v, want {0,2,2}", ent.Specificity)
	}

	if _, ok := b.Entry("missing"); ok {
		t.Error("Entry(\"missing\") found, want absent")
	}
	if len(b.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", b.Warnings)
	}
}

func TestCompileGeneratesID(t *testing.T) {
	b, err := testDocument().Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if _, err := uuid.Parse(b.ID); err != nil {
		t.Errorf("generated ID %q does not parse: %v", b.ID, err)
	}

	doc := testDocument()
	doc.ID = "01890a5d-ac96-774b-bcce-b302099a8057"
	b, err = doc.Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if b.ID != doc.ID {
		t.Errorf("ID = %q, want document id %q", b.ID, doc.ID)
	}
}

func TestCompileAggregatesErrors(t *testing.T) {
	doc := &catalog.Document{
		Version: 1,
		Selectors: []catalog.Definition{
			{Name: "menu", Element: "ul"},
			{Name: "menu", Element: "ol"}, // duplicate
			{Name: "empty"},               // no parts
		},
		Combined: []catalog.Combination{
			{Name: "c1", Left: "menu", Op: "?", Right: "menu"},   // bad op
			{Name: "c2", Left: "ghost", Op: ">", Right: "menu"},  // unknown left
			{Name: "c3", Left: "menu", Op: ">", Right: "c4"},     // forward reference
			{Name: "c4", Left: "menu", Op: ">", Right: "menu"},   // fine
		},
		Rules: []catalog.RuleDef{
			{Selector: "nothing"},
		},
	}

	_, err := doc.Compile(zap.NewNop())
	if err == nil {
		t.Fatal("Compile() error = nil, want aggregated errors")
	}

	for _, want := range []string{
		`duplicate selector name "menu"`,
		`selector "empty" has no parts`,
		`unsupported combinator "?"`,
		`combination "c2" references unknown selector "ghost"`,
		`combination "c3" references unknown selector "c4"`,
		`rule references unknown selector "nothing"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Compile() error missing %q in %v", want, err)
		}
	}
}

func TestCompileWarnings(t *testing.T) {
	doc := &catalog.Document{
		Version: 1,
		Selectors: []catalog.Definition{
			{Name: "odd", Element: "div", Classes: []string{"my class"}},
			{Name: "fine", Element: "p"},
		},
	}

	b, err := doc.Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(b.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want one", b.Warnings)
	}
	if !strings.Contains(b.Warnings[0], `class "my class" is not a valid CSS identifier`) {
		t.Errorf("warning = %q", b.Warnings[0])
	}
}

func TestStylesheet(t *testing.T) {
	b, err := testDocument().Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	sheet := b.Stylesheet("site navigation", true)
	text := sheet.String()

	if !strings.HasPrefix(text, "/* site navigation */\n") {
		t.Errorf("stylesheet missing header:\n%s", text)
	}
	if !strings.Contains(text, "ul.nav > li:first-child {\n  margin: 0;\n}\n") {
		t.Errorf("stylesheet missing rule:\n%s", text)
	}
	// Scaffold rules for entries nothing references.
	if !strings.Contains(text, "ul.nav {\n}\n") {
		t.Errorf("stylesheet missing scaffold rule:\n%s", text)
	}

	bare := b.Stylesheet("", false)
	if got := len(bare.Rules); got != 1 {
		t.Errorf("unscaffolded rules = %d, want 1", got)
	}
}

func TestBuildString(t *testing.T) {
	doc := &catalog.Document{
		Version: 1,
		Selectors: []catalog.Definition{
			{Name: "item10", Element: "li"},
			{Name: "item2", Element: "li"},
		},
	}

	b, err := doc.Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	out := b.String()
	i2, i10 := strings.Index(out, `Selector["item2"]`), strings.Index(out, `Selector["item10"]`)
	if i2 < 0 || i10 < 0 {
		t.Fatalf("String() missing entries:\n%s", out)
	}
	// Natural order puts item2 before item10.
	if i2 > i10 {
		t.Errorf("String() order wrong:\n%s", out)
	}

	var nilBuild *catalog.Build
	if got := nilBuild.String(); got != "<nil Build>" {
		t.Errorf("nil String() = %q", got)
	}
}

func TestWriteXML(t *testing.T) {
	b, err := testDocument().Compile(zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	var buf bytes.Buffer
	if err := b.WriteXML(&buf); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("manifest does not re-parse: %v", err)
	}

	root := doc.SelectElement("catalog")
	if root == nil {
		t.Fatal("manifest has no catalog root")
	}
	if got := root.SelectAttrValue("name", ""); got != "site navigation" {
		t.Errorf("catalog name = %q", got)
	}

	sels := root.SelectElement("selectors")
	if sels == nil {
		t.Fatal("manifest has no selectors element")
	}
	entries := sels.SelectElements("selector")
	if len(entries) != 5 {
		t.Fatalf("manifest selectors = %d, want 5", len(entries))
	}
	first := entries[0]
	if got := first.SelectAttrValue("name", ""); got != "menu" {
		t.Errorf("first selector name = %q, want menu", got)
	}
	if got := first.Text(); got != "ul.nav" {
		t.Errorf("first selector text = %q, want ul.nav", got)
	}
	if got := first.SelectAttrValue("specificity", ""); got != "0,1,1" {
		t.Errorf("first selector specificity = %q, want 0,1,1", got)
	}
}
