package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// treeWriter indents listing lines. Kept tiny on purpose.
type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) String() string {
	return tw.w.String()
}

// String returns a readable tree of the build. It backs the text
// output format and manual inspection during debugging.
func (b *Build) String() string {
	if b == nil {
		return "<nil Build>"
	}

	tw := &treeWriter{}
	if b.Name != "" {
		tw.line(0, "Catalog %q id=%s", b.Name, b.ID)
	} else {
		tw.line(0, "Catalog id=%s", b.ID)
	}

	tw.line(0, "Entries: %d", len(b.Entries))
	names := make([]string, 0, len(b.Entries))
	for _, ent := range b.Entries {
		names = append(names, ent.Name)
	}
	sort.Sort(natural.StringSlice(names))
	for _, name := range names {
		ent, _ := b.Entry(name)
		tw.line(1, "Selector[%q] specificity[%s] %s", ent.Name, ent.Specificity, ent.Rendered)
	}

	if len(b.rules) > 0 {
		tw.line(0, "Rules: %d", len(b.rules))
	}
	if len(b.Warnings) > 0 {
		tw.line(0, "Warnings: %d", len(b.Warnings))
		for _, wrn := range b.Warnings {
			tw.line(1, "%s", wrn)
		}
	}
	return tw.String()
}
