package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"teebox/internal/config"
	"teebox/internal/services"
)

// CourseHandler proxies course data from the third-party golf-course API.
// Response bodies pass through unmodified.
type CourseHandler struct {
	client *services.GolfCourseClient
}

func NewCourseHandler(client *services.GolfCourseClient) *CourseHandler {
	return &CourseHandler{client: client}
}

func NewCourseHandlerFromConfig(cfg *config.Config) *CourseHandler {
	if cfg == nil {
		return NewCourseHandler(nil)
	}
	return NewCourseHandler(services.NewGolfCourseClient(cfg.GolfAPIBaseURL, cfg.GolfAPIKey))
}

// @Tags Courses
// @Summary Get course details from the upstream golf-course API
// @Produce json
// @Param id path string true "Upstream course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "golf api client not configured")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Course ID is required")
		return
	}

	raw, err := h.client.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			writeJSONErrorResponse(w, http.StatusNotFound, "course_not_found", "Course not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_error", "Failed to fetch course details")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// @Tags Courses
// @Summary Search courses on the upstream golf-course API
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/courses [get]
func (h *CourseHandler) SearchCourses(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "golf api client not configured")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Query parameter q is required")
		return
	}

	raw, err := h.client.SearchCourses(r.Context(), q)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_error", "Failed to search courses")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
