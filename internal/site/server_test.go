package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/helpnav/internal/pages"
)

func TestHealthCheck(t *testing.T) {
	srv := NewServer(ServerConfig{Dir: t.TempDir()}, pages.Default())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestPagesEndpoint(t *testing.T) {
	srv := NewServer(ServerConfig{Dir: t.TempDir()}, pages.Default())

	req := httptest.NewRequest("GET", "/api/pages", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body pagesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(body.Pages))
	}
	if body.Pages[1].FileName != "OC4DOPENVDBPRIMITIVE.html" {
		t.Errorf("pages[1] = %+v", body.Pages[1])
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "OC4DOPENVDBPRIMITIVE.html"), "<html>primitive</html>")

	srv := NewServer(ServerConfig{Dir: dir}, pages.Default())

	req := httptest.NewRequest("GET", "/OC4DOPENVDBPRIMITIVE.html", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	if string(body) != "<html>primitive</html>" {
		t.Errorf("body = %q", body)
	}

	req = httptest.NewRequest("GET", "/missing.html", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing file, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := NewServer(ServerConfig{Dir: t.TempDir(), AllowAll: true}, pages.Default())

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}
