package api

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"

	"github.com/matzehuels/archiview/pkg/builder"
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/export"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/modelfile"
	"github.com/matzehuels/archiview/pkg/viewpoint"
)

// Viewpoint describes a built-in viewpoint.
type Viewpoint struct {
	Name          string   `json:"name"`
	Total         bool     `json:"total,omitempty"`
	Elements      []string `json:"elements,omitempty"`
	Relationships []string `json:"relationships,omitempty"`
}

// Kinds lists the element and relationship kinds a model file may use.
type Kinds struct {
	Elements      []string `json:"elements"`
	Relationships []string `json:"relationships"`
}

func (s *Server) listViewpoints(w http.ResponseWriter, _ *http.Request) {
	all := viewpoint.All()
	out := make([]Viewpoint, len(all))
	for i, vp := range all {
		out[i] = Viewpoint{Name: vp.Name(), Total: vp.IsTotal()}
		if vp.IsTotal() {
			continue
		}
		for _, k := range vp.ElementKinds() {
			out[i].Elements = append(out[i].Elements, string(k))
		}
		for _, k := range vp.RelationshipKinds() {
			out[i].Relationships = append(out[i].Relationships, string(k))
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) listKinds(w http.ResponseWriter, _ *http.Request) {
	var out Kinds
	for _, k := range model.ElementKinds() {
		out.Elements = append(out.Elements, string(k))
	}
	for _, k := range model.RelationshipKinds() {
		out.Relationships = append(out.Relationships, string(k))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	_, m, err := s.build(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, export.FromModel(m))
}

func (s *Server) renderSVG(w http.ResponseWriter, r *http.Request) {
	if s.svg == nil {
		s.respondError(w, r, errors.New(errors.ErrCodeUnsupported, "svg rendering is not enabled"))
		return
	}
	f, m, err := s.build(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	name := r.URL.Query().Get("view")
	var d *model.Diagram
	switch {
	case name != "":
		found, ok := m.Diagram(name)
		if !ok {
			s.respondError(w, r, errors.New(errors.ErrCodeNotFound, "view %q not declared", name))
			return
		}
		d = found
	case len(m.Diagrams) > 0:
		d = m.Diagrams[0]
	default:
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "model declares no views"))
		return
	}

	svg, err := export.SVG(r.Context(), s.svg, d, f.Style(d.Name))
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeEngine, err, "render svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func (s *Server) build(w http.ResponseWriter, r *http.Request) (*modelfile.File, *model.Model, error) {
	format, err := requestFormat(r)
	if err != nil {
		return nil, nil, err
	}
	f, err := modelfile.Decode(http.MaxBytesReader(w, r.Body, s.maxBody), format)
	if err != nil {
		return nil, nil, err
	}
	if len(f.Include) > 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "include is not supported for posted model files")
	}
	m, err := f.Build(r.Context(), builder.WithRenderer(s.renderer))
	return f, m, err
}

func requestFormat(r *http.Request) (modelfile.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return modelfile.ParseFormat(q)
	}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/yaml", "text/yaml", "application/x-yaml":
		return modelfile.FormatYAML, nil
	}
	return modelfile.FormatTOML, nil
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		code, status = errors.ErrCodeInvalidInput, http.StatusRequestEntityTooLarge
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("render request failed", "path", r.URL.Path, "err", err)
	}
	respondJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: errors.UserMessage(err)}})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidKind, errors.ErrCodeInvalidViewpoint,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath, errors.ErrCodeContext:
		return http.StatusBadRequest
	case errors.ErrCodeDuplicateID:
		return http.StatusConflict
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeEngine, errors.ErrCodeUnresolvedReference:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
