package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetCoursePassesBodyThrough(t *testing.T) {
	const body = `{"course":{"id":123,"club_name":"Pebble Creek Golf Club"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/courses/123" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Key test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewGolfCourseClient(srv.URL, "test-key")
	raw, err := c.GetCourse(context.Background(), "123")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if string(raw) != body {
		t.Fatalf("expected body passed through untouched, got %s", raw)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewGolfCourseClient(srv.URL, "test-key")
	_, err := c.GetCourse(context.Background(), "999")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestGetCourseUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGolfCourseClient(srv.URL, "test-key")
	_, err := c.GetCourse(context.Background(), "123")
	if err == nil {
		t.Fatalf("expected an error for a 500 upstream response")
	}
}

func TestSearchCoursesRequiresQuery(t *testing.T) {
	c := NewGolfCourseClient("http://example.invalid", "test-key")
	if _, err := c.SearchCourses(context.Background(), "  "); err == nil {
		t.Fatalf("expected an error for an empty query")
	}
}

func TestListCoursesParsesWrappedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "pebble" {
			t.Errorf("unexpected search_query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"courses":[
			{"id":1,"club_name":"Pebble Creek Golf Club","course_name":"Championship","location":{"city":"Springfield","state":"IL"},"holes":18},
			{"id":0,"club_name":"missing id, skipped"},
			{"id":2,"club_name":"Willow Bend Country Club"}
		]}`))
	}))
	defer srv.Close()

	c := NewGolfCourseClient(srv.URL, "test-key")
	courses, err := c.ListCourses(context.Background(), "pebble")
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	first := courses[0]
	if first.ExternalID != 1 || first.ClubName != "Pebble Creek Golf Club" || first.City != "Springfield" || first.State != "IL" || first.Holes != 18 {
		t.Fatalf("unexpected first course %+v", first)
	}
}

func TestListCoursesParsesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"club_name":"Cedar Ridge Municipal","holes":9}]`))
	}))
	defer srv.Close()

	c := NewGolfCourseClient(srv.URL, "test-key")
	courses, err := c.ListCourses(context.Background(), "cedar")
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].ExternalID != 7 || courses[0].Holes != 9 {
		t.Fatalf("unexpected courses %+v", courses)
	}
}
