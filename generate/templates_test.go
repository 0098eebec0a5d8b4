package generate

import (
	"strings"
	"testing"

	"cssel/catalog"
	"cssel/common"
	"cssel/config"
)

func testBuildForTemplate(t *testing.T, name string) *catalog.Build {
	t.Helper()
	return &catalog.Build{
		ID:   "01890a5d-ac96-774b-bcce-b302099a8057",
		Name: name,
		Entries: []catalog.Entry{
			{Name: "menu", Rendered: "ul.nav"},
			{Name: "item", Rendered: "li:first-child"},
			{Name: "link", Rendered: `a[href^="/"]`},
		},
	}
}

func TestExpandTemplate_SimpleText(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "simple-text", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "simple-text" {
		t.Errorf("expandTemplate() = %q, want %q", result, "simple-text")
	}
}

func TestExpandTemplate_Name(t *testing.T) {
	b := testBuildForTemplate(t, "My Great Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Name }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "My Great Site" {
		t.Errorf("expandTemplate() = %q, want %q", result, "My Great Site")
	}
}

func TestExpandTemplate_CatalogID(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .CatalogID }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "01890a5d-ac96-774b-bcce-b302099a8057" {
		t.Errorf("expandTemplate() = %q, want %q", result, "01890a5d-ac96-774b-bcce-b302099a8057")
	}
}

func TestExpandTemplate_Format(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Format }}", common.OutputFmtXML)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "xml" {
		t.Errorf("expandTemplate() = %q, want %q", result, "xml")
	}
}

func TestExpandTemplate_Source(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "path/to/site-menu.yaml", config.OutputNameTemplateFieldName, "{{ .Source }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "site-menu" {
		t.Errorf("expandTemplate() = %q, want %q", result, "site-menu")
	}
}

func TestExpandTemplate_Selectors(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Selectors }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "3" {
		t.Errorf("expandTemplate() = %q, want %q", result, "3")
	}
}

func TestExpandTemplate_Context(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Context }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != string(config.OutputNameTemplateFieldName) {
		t.Errorf("expandTemplate() = %q, want %q", result, string(config.OutputNameTemplateFieldName))
	}
}

func TestExpandTemplate_ComplexTemplate(t *testing.T) {
	b := testBuildForTemplate(t, "The Great Site")

	template := "{{ .Name }}/{{ printf \"%02d\" .Selectors }} - {{ .Source }}"
	result, err := expandTemplate(b, "source.yaml", config.OutputNameTemplateFieldName, template, common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}

	expected := "The Great Site/03 - source"
	if result != expected {
		t.Errorf("expandTemplate() = %q, want %q", result, expected)
	}
}

func TestExpandTemplate_SprigFunctions(t *testing.T) {
	b := testBuildForTemplate(t, "site menu")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Name | title }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if result != "Site Menu" {
		t.Errorf("expandTemplate() = %q, want %q", result, "Site Menu")
	}
}

func TestExpandTemplate_InvalidTemplate(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	_, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Name", common.OutputFmtCSS)
	if err == nil {
		t.Error("expandTemplate() expected error for invalid template, got nil")
	}
}

func TestExpandTemplate_InvalidField(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	_, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .NonExistentField }}", common.OutputFmtCSS)
	if err == nil {
		t.Error("expandTemplate() expected error for invalid field, got nil")
	}
}

func TestExpandTemplate_PathSeparators(t *testing.T) {
	b := testBuildForTemplate(t, "Site")

	result, err := expandTemplate(b, "menu.yaml", config.OutputNameTemplateFieldName, "{{ .Name }}/{{ .Source }}", common.OutputFmtCSS)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}

	// Should contain forward slash for path separation
	if !strings.Contains(result, "/") {
		t.Errorf("expandTemplate() = %q, want to contain /", result)
	}
}
