package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cssel/catalog"
	"cssel/common"
	"cssel/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context   string
	Name      string
	CatalogID string
	Format    string
	Source    string
	Selectors int
}

func expandTemplate(b *catalog.Build, src string, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:   string(name),
		Name:      b.Name,
		CatalogID: b.ID,
		Format:    format.String(),
		Source:    strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Selectors: len(b.Entries),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
