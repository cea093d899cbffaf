package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"teebox/internal/services"
)

func courseRouter(upstream *httptest.Server) *chi.Mux {
	h := NewCourseHandler(services.NewGolfCourseClient(upstream.URL, "test-key"))
	r := chi.NewRouter()
	r.Get("/courses", h.SearchCourses)
	r.Get("/courses/{id}", h.GetCourse)
	return r
}

func TestGetCourseProxiesUpstreamBody(t *testing.T) {
	const body = `{"course":{"id":42,"club_name":"Willow Bend Country Club"}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer upstream.Close()

	r := courseRouter(upstream)
	req := httptest.NewRequest(http.MethodGet, "/courses/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != body {
		t.Fatalf("expected upstream body passed through, got %s", w.Body.String())
	}
}

func TestGetCourseUnknownIDReturns404(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	r := courseRouter(upstream)
	req := httptest.NewRequest(http.MethodGet, "/courses/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestGetCourseUpstreamFailureReturns502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	r := courseRouter(upstream)
	req := httptest.NewRequest(http.MethodGet, "/courses/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSearchCoursesRequiresQueryParam(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called without a query")
	}))
	defer upstream.Close()

	r := courseRouter(upstream)
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}
