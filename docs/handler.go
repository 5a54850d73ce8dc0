// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Handler serves a pre-rendered API document
type Handler struct {
	yamlDoc []byte
	jsonDoc []byte
}

// NewHandler validates doc and renders it once in both formats
func NewHandler(doc *openapi3.T) (*Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	j, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render openapi json: %w", err)
	}
	y, err := jsonToYAML(j)
	if err != nil {
		return nil, fmt.Errorf("render openapi yaml: %w", err)
	}
	return &Handler{yamlDoc: y, jsonDoc: j}, nil
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping key order
func jsonToYAML(j []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(j, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)
	return yaml.Marshal(&node)
}

// clearStyle drops the flow and quoting styles inherited from JSON
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// ServeYAML handles GET /docs/openapi.yaml
func (h *Handler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/yaml", h.yamlDoc)
}

// ServeJSON handles GET /docs/openapi.json
func (h *Handler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/json", h.jsonDoc)
}

func (h *Handler) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write api document", "error", err)
	}
}
