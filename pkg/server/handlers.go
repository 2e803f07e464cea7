package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	verrors "github.com/vango-dev/vnode/internal/errors"
	"github.com/vango-dev/vnode/pkg/markup"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type componentsResponse struct {
	Components []string `json:"components"`
}

type coerceResponse struct {
	// Node is the coerced node, or null when the value renders nothing
	// or is not renderable.
	Node *markup.Snapshot `json:"node"`

	// Unchanged reports that the value passed through coercion as is.
	Unchanged bool `json:"unchanged,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	if names == nil {
		names = []string{}
	}
	s.respond(w, r, http.StatusOK, componentsResponse{Components: names})
}

// handleNormalize decodes an element description and answers with its
// snapshot. ?format=yaml selects a YAML response.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	node, err := s.decoder.DecodeBytes(body)
	if err != nil {
		s.metrics.RecordDecodeError(verrors.FromError(err, "E101").Code)
		s.fail(w, r, err)
		return
	}

	snap := markup.Encode(node)
	counts := snap.Count()
	s.metrics.RecordNodes(counts)
	span := trace.SpanFromContext(r.Context())
	for kind, n := range counts {
		span.SetAttributes(attribute.Int("vnode.nodes."+kind, n))
	}

	if r.URL.Query().Get("format") == "yaml" {
		out, err := yaml.Marshal(snap)
		if err != nil {
			s.fail(w, r, verrors.New("E180").Wrap(err))
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
		return
	}
	s.respond(w, r, http.StatusOK, snap)
}

// handleCoerce runs one JSON value through vdom.Coerce.
func (s *Server) handleCoerce(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		s.fail(w, r, verrors.New("E162").Wrap(err))
		return
	}

	snap := markup.Encode(value)
	resp := coerceResponse{Node: snap}
	switch value.(type) {
	case nil, bool, string, float64:
	default:
		resp.Unchanged = true
	}
	if snap != nil {
		s.metrics.RecordNodes(snap.Count())
	}
	s.respond(w, r, http.StatusOK, resp)
}

// readBody reads the request body up to Server.MaxBodyBytes.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	reader := io.Reader(r.Body)
	if limit := s.config.Server.MaxBodyBytes; limit > 0 {
		reader = http.MaxBytesReader(w, r.Body, limit)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, verrors.New("E161").Wrap(err)
		}
		return nil, verrors.New("E160").Wrap(err)
	}
	return body, nil
}
