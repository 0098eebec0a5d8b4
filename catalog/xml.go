package catalog

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// WriteXML writes the build manifest as XML: catalog identity, every
// entry with its rendered text and specificity, and lint warnings.
func (b *Build) WriteXML(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("id", b.ID)
	if b.Name != "" {
		root.CreateAttr("name", b.Name)
	}

	sels := root.CreateElement("selectors")
	for _, ent := range b.Entries {
		e := sels.CreateElement("selector")
		e.CreateAttr("name", ent.Name)
		e.CreateAttr("specificity", ent.Specificity.String())
		e.SetText(ent.Rendered)
	}

	if len(b.Warnings) > 0 {
		ws := root.CreateElement("warnings")
		for _, wrn := range b.Warnings {
			ws.CreateElement("warning").SetText(wrn)
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write catalog manifest: %w", err)
	}
	return nil
}
