// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	return NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "quickly-ask API v1" {
		t.Errorf("Unexpected body '%s'", w.Body.String())
	}

	// Root only matches exactly
	req = httptest.NewRequest("GET", "/nope", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRoutesExist(t *testing.T) {
	mux := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/questions"},
		{"GET", "/questions/search"},
		{"GET", "/questions/1"},
		{"POST", "/questions"},
		{"PUT", "/questions/1"},
		{"DELETE", "/questions/1"},
		{"GET", "/questions/1/answers"},
		{"POST", "/questions/1/answers"},
		{"DELETE", "/questions/1/answers"},
		{"POST", "/questions/1/vote"},
		{"POST", "/answers/1/vote"},
		{"GET", "/questions/1/votes"},
		{"GET", "/answers/1/votes"},
		{"GET", "/docs/openapi.yaml"},
		{"GET", "/docs/openapi.json"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// Unknown rows give a JSON 404; only an unregistered route gives
			// the mux's plain-text 404 or a 405
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered", route.method, route.path)
			}
			if w.Code == http.StatusNotFound && !strings.Contains(w.Body.String(), `"message"`) {
				t.Errorf("Route %s %s not registered", route.method, route.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("PATCH", "/questions/1", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestQuestionFlow(t *testing.T) {
	mux := newTestRouter(t)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	w := do("POST", "/questions", `{"title":"T","description":"D","category":"C"}`)
	testutil.AssertStatus(t, w, http.StatusCreated)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}

	w = do("GET", "/questions/1", "")
	testutil.AssertStatus(t, w, http.StatusOK)
	expected := `{"data":[{"id":1,"title":"T","category":"C","description":"D"}]}` + "\n"
	if w.Body.String() != expected {
		t.Errorf("Expected body %s, got %s", expected, w.Body.String())
	}

	w = do("GET", "/questions/search?category=FOO", "")
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != `{"data":[]}`+"\n" {
		t.Errorf("Expected empty search result, got %s", w.Body.String())
	}

	w = do("GET", "/questions/search", "")
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = do("POST", "/questions/1/answers", `{"content":"A"}`)
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = do("POST", "/answers/1/vote", `{"vote":1}`)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("POST", "/questions/1/vote", `{"vote":-1}`)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/answers/1/votes", "")
	testutil.AssertStatus(t, w, http.StatusOK)
	var tally struct {
		Data models.AnswerVoteTally `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tally); err != nil {
		t.Fatalf("Failed to decode tally: %v", err)
	}
	if tally.Data.Count != 1 || tally.Data.Score != 1 {
		t.Errorf("Unexpected tally %+v", tally.Data)
	}

	w = do("PUT", "/questions/1", `{"title":"T2","description":"D2","category":"C2"}`)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("DELETE", "/questions/1/answers", "")
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/questions/1", "")
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = do("GET", "/questions", "")
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]\n" {
		t.Errorf("Expected no questions left, got %s", w.Body.String())
	}
}

func TestDocsEndpoints(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/docs/openapi.yaml", "/docs/openapi.json"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: expected X-Request-ID header", path)
		}
	}

	req := httptest.NewRequest("GET", "/docs/openapi.json", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var doc struct {
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}
	testutil.AssertJSON(t, w, &doc)
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "http://localhost:4001" {
		t.Errorf("Unexpected servers %+v", doc.Servers)
	}
}
