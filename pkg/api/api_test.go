package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/archiview/internal/enginetest"
	"github.com/matzehuels/archiview/pkg/api"
	"github.com/matzehuels/archiview/pkg/export"
	"github.com/matzehuels/archiview/pkg/layout/engine"
	"github.com/matzehuels/archiview/pkg/observability"
	"github.com/matzehuels/archiview/pkg/view"
)

const shopTOML = `
name = "Shop"

[[elements]]
id = "web"
kind = "application_component"
name = "web shop"

[[elements]]
id = "orders"
kind = "application_service"
name = "orders"

[[relationships]]
id = "r1"
kind = "realization"
source = "web"
target = "orders"

[[views]]
name = "Overview"
`

const shopYAML = `
name: Shop
elements:
  - {id: web, kind: application_component, name: web shop}
  - {id: orders, kind: application_service, name: orders}
relationships:
  - {id: r1, kind: realization, source: web, target: orders}
views:
  - name: Overview
`

type svgStub struct{}

func (svgStub) SVG(context.Context, []byte) ([]byte, error) { return []byte("<svg/>"), nil }

func newServer(opts ...api.Option) http.Handler {
	return api.New(view.NewRenderer(&enginetest.Grid{}, nil), nil, opts...).Handler()
}

func post(t *testing.T, h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

func TestRender(t *testing.T) {
	h := newServer()
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
	}{
		{"toml by default", "/api/v1/render", "text/plain", shopTOML},
		{"yaml by content type", "/api/v1/render", "application/yaml; charset=utf-8", shopYAML},
		{"yaml by query", "/api/v1/render?format=yml", "text/plain", shopYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.target, tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			var m export.Model
			if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
				t.Fatal(err)
			}
			if len(m.Diagrams) != 1 {
				t.Fatalf("got %d diagrams", len(m.Diagrams))
			}
			d := m.Diagrams[0]
			if len(d.Nodes) != 2 || len(d.Connections) != 1 || d.Connections[0].Relationship != "r1" {
				t.Errorf("diagram = %+v", d)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	h := newServer(api.WithMaxBody(2048))
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"unknown kind", "text/plain", "[[elements]]\nkind = \"gizmo\"\nname = \"x\"\n", http.StatusBadRequest, "INVALID_KIND"},
		{"syntax", "text/plain", "name = ", http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown viewpoint", "text/plain", "[[views]]\nname = \"v\"\nviewpoint = \"nope\"\n", http.StatusBadRequest, "INVALID_VIEWPOINT"},
		{"missing element", "text/plain", "[[relationships]]\nkind = \"serving\"\nsource = \"a\"\ntarget = \"b\"\n", http.StatusNotFound, "NOT_FOUND"},
		{"include", "text/plain", "include = [\"other.toml\"]\n", http.StatusBadRequest, "INVALID_INPUT"},
		{"duplicate id", "text/plain", "[[elements]]\nid = \"x\"\nkind = \"node\"\nname = \"a\"\n[[elements]]\nid = \"x\"\nkind = \"node\"\nname = \"b\"\n", http.StatusConflict, "DUPLICATE_ID"},
		{"too large", "text/plain", "documentation = \"" + strings.Repeat("x", 4096) + "\"\n", http.StatusRequestEntityTooLarge, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, "/api/v1/render", tt.contentType, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			if got := errorCode(t, rec); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestRenderUnsupportedMediaType(t *testing.T) {
	rec := post(t, newServer(), "/api/v1/render", "application/json", "{}")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRenderEngineFailure(t *testing.T) {
	failing := engine.Func(func(context.Context, []byte) ([]byte, error) {
		return nil, errors.New("engine crashed")
	})
	h := api.New(view.NewRenderer(failing, nil), nil).Handler()
	rec := post(t, h, "/api/v1/render", "text/plain", shopTOML)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := errorCode(t, rec); got != "ENGINE_ERROR" {
		t.Errorf("code = %s", got)
	}
}

func TestRenderTimeout(t *testing.T) {
	slow := engine.Func(func(ctx context.Context, _ []byte) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	r := view.NewRenderer(slow, nil)
	r.Timeout = 10 * time.Millisecond
	rec := post(t, api.New(r, nil).Handler(), "/api/v1/render", "text/plain", shopTOML)
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestRenderSVG(t *testing.T) {
	rec := post(t, newServer(), "/api/v1/render/svg", "text/plain", shopTOML)
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("svg without renderer: status = %d", rec.Code)
	}

	h := newServer(api.WithSVG(svgStub{}))
	rec = post(t, h, "/api/v1/render/svg?view=Overview", "text/plain", shopTOML)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/svg+xml" || rec.Body.String() != "<svg/>" {
		t.Errorf("svg: status = %d, type = %q, body = %q", rec.Code, rec.Header().Get("Content-Type"), rec.Body)
	}

	rec = post(t, h, "/api/v1/render/svg?view=Missing", "text/plain", shopTOML)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing view: status = %d", rec.Code)
	}
}

func TestListViewpoints(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/viewpoints", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var vps []api.Viewpoint
	if err := json.NewDecoder(rec.Body).Decode(&vps); err != nil {
		t.Fatal(err)
	}
	found := map[string]api.Viewpoint{}
	for _, vp := range vps {
		found[vp.Name] = vp
	}
	if total, ok := found["Total"]; !ok || !total.Total || len(total.Elements) != 0 {
		t.Errorf("Total = %+v", total)
	}
	if ab, ok := found["Application Behavior"]; !ok || len(ab.Elements) == 0 {
		t.Errorf("Application Behavior = %+v", ab)
	}
}

func TestListKinds(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/kinds", nil))
	var kinds api.Kinds
	if err := json.NewDecoder(rec.Body).Decode(&kinds); err != nil {
		t.Fatal(err)
	}
	if len(kinds.Elements) == 0 || len(kinds.Relationships) == 0 {
		t.Errorf("kinds = %+v", kinds)
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests []string
	statuses []int
}

func (h *recordingHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h := newServer()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	post(t, h, "/api/v1/render", "text/plain", "name = ")

	if got := rec.Header().Get("Server"); !strings.HasPrefix(got, "archiview/") {
		t.Errorf("Server header = %q", got)
	}
	if len(hooks.requests) != 2 || hooks.requests[0] != "GET /health" {
		t.Errorf("requests = %v", hooks.requests)
	}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusBadRequest {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}
