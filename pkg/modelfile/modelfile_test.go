package modelfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/archiview/internal/enginetest"
	"github.com/matzehuels/archiview/pkg/builder"
	aerrors "github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/modelfile"
	"github.com/matzehuels/archiview/pkg/view"
)

func gridBuild(t *testing.T, f *modelfile.File) *model.Model {
	t.Helper()
	m, err := f.Build(context.Background(), builder.WithRenderer(view.NewRenderer(&enginetest.Grid{}, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLoadTOMLWithInclude(t *testing.T) {
	f, err := modelfile.Load("testdata/archisurance.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Elements) != 12 || len(f.Relationships) != 13 || len(f.Views) != 3 {
		t.Fatalf("merged file: %d elements, %d relationships, %d views",
			len(f.Elements), len(f.Relationships), len(f.Views))
	}
	if f.Properties["owner"] != "architecture board" || f.Properties["domain"] != "sales" {
		t.Errorf("properties = %v", f.Properties)
	}

	if got := f.Style("Business Process Cooperation").Splines; got != "spline" {
		t.Errorf("declared splines = %q", got)
	}
	if got := f.Style("no such view"); got != layout.DefaultStyle() {
		t.Errorf("undeclared view style = %+v", got)
	}

	m := gridBuild(t, f)
	if m.Name != "Archisurance" || m.Version != "3.1.1" {
		t.Errorf("model = %q %q", m.Name, m.Version)
	}
	if m.Elements[0].Name != "take order" || m.Elements[0].Kind != model.BusinessService {
		t.Errorf("included elements should come first, got %q", m.Elements[0].Name)
	}
	if len(m.Diagrams) != 3 {
		t.Fatalf("got %d diagrams", len(m.Diagrams))
	}
	if m.Diagrams[1].Viewpoint != "Application Behavior" {
		t.Errorf("viewpoint = %q", m.Diagrams[1].Viewpoint)
	}
	if len(m.Properties) != 2 {
		t.Errorf("got %d model properties", len(m.Properties))
	}

	bpc := m.Diagrams[2]
	email, ok := elementNamed(m, "email")
	if !ok {
		t.Fatal("email element missing")
	}
	if _, ok := bpc.NodeFor(email); !ok {
		t.Error("isolated = include should draw the unconnected email interface")
	}
}

func elementNamed(m *model.Model, name string) (*model.Element, bool) {
	for _, e := range m.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

func TestLoadYAML(t *testing.T) {
	f, err := modelfile.Load("testdata/shop.yaml")
	if err != nil {
		t.Fatal(err)
	}
	m := gridBuild(t, f)
	if m.ID != "shop" {
		t.Errorf("model id = %q", m.ID)
	}
	web, ok := m.Element("web")
	if !ok || web.Kind != model.ApplicationComponent {
		t.Fatalf("web = %+v", web)
	}
	if len(web.Properties) != 1 || web.Properties[0].Key() != "tier" {
		t.Errorf("web properties = %+v", web.Properties)
	}

	only, _ := m.Diagram("Orders only")
	if len(only.Connections) != 1 || only.Connections[0].Relationship.ID != "r-realize" {
		t.Errorf("explicit relationships not honored")
	}
	all, _ := m.Diagram("All")
	if len(all.Connections) != 2 {
		t.Errorf("select = all: %d connections", len(all.Connections))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format modelfile.Format
		input  string
		code   aerrors.Code
	}{
		{"bad toml", modelfile.FormatTOML, "name = ", aerrors.ErrCodeInvalidFormat},
		{"unknown toml key", modelfile.FormatTOML, "colour = \"red\"", aerrors.ErrCodeInvalidFormat},
		{"unknown yaml key", modelfile.FormatYAML, "colour: red\n", aerrors.ErrCodeInvalidFormat},
		{"unknown format", modelfile.Format("xml"), "<model/>", aerrors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := modelfile.Decode(strings.NewReader(tt.input), tt.format)
			if !aerrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	f, err := modelfile.Decode(strings.NewReader(""), modelfile.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Elements) != 0 {
		t.Error("empty document should decode to an empty file")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  aerrors.Code
	}{
		{"unknown element kind", `
[[elements]]
kind = "business_gizmo"
name = "x"`, aerrors.ErrCodeInvalidKind},
		{"unknown relationship kind", `
[[elements]]
kind = "node"
name = "a"
[[relationships]]
kind = "depends_on"
source = "a"
target = "a"`, aerrors.ErrCodeInvalidKind},
		{"missing reference", `
[[elements]]
kind = "node"
name = "a"
[[relationships]]
kind = "association"
source = "a"
target = "b"`, aerrors.ErrCodeNotFound},
		{"ambiguous name", `
[[elements]]
kind = "node"
name = "a"
[[elements]]
kind = "device"
name = "a"
[[relationships]]
kind = "association"
source = "a"
target = "a"`, aerrors.ErrCodeInvalidInput},
		{"unknown viewpoint", `
[[views]]
name = "v"
viewpoint = "astrology"`, aerrors.ErrCodeInvalidViewpoint},
		{"bad select", `
[[views]]
name = "v"
select = "some"`, aerrors.ErrCodeInvalidInput},
		{"duplicate id", `
[[elements]]
id = "x"
kind = "node"
name = "a"
[[elements]]
id = "x"
kind = "node"
name = "b"`, aerrors.ErrCodeDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := modelfile.Decode(strings.NewReader(tt.input), modelfile.FormatTOML)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := f.Builder(); !aerrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		code aerrors.Code
	}{
		{"missing file", filepath.Join(dir, "nope.toml"), aerrors.ErrCodeFileNotFound},
		{"unsupported extension", write("model.json", "{}"), aerrors.ErrCodeInvalidFormat},
		{"include cycle", "testdata/cycle-a.toml", aerrors.ErrCodeInvalidInput},
		{"include traversal", write("up.toml", `include = ["../secret.toml"]`), aerrors.ErrCodeInvalidPath},
		{"missing include", write("inc.toml", `include = ["gone.toml"]`), aerrors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := modelfile.Load(tt.path); !aerrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]modelfile.Format{
		"a.toml":    modelfile.FormatTOML,
		"a.yaml":    modelfile.FormatYAML,
		"dir/b.YML": modelfile.FormatYAML,
	}
	for path, want := range tests {
		if got, err := modelfile.FormatFor(path); err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v", path, got, err)
		}
	}
	if _, err := modelfile.ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}
}
