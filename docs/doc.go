// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docs describes the HTTP API as an OpenAPI 3.0 document built with
kin-openapi.

New builds the document; NewHandler validates it and renders it once as
JSON and YAML:

	h, err := docs.NewHandler(docs.New("http://localhost:4001"))
	mux.HandleFunc("GET /docs/openapi.yaml", h.ServeYAML)
	mux.HandleFunc("GET /docs/openapi.json", h.ServeJSON)

Keep New in step with the routes registered in package router.
*/
package docs
