package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teebox/internal/models"
	"teebox/internal/repository"
	"teebox/internal/services"
)

// SyncHandler pulls search results from the upstream golf-course API and
// upserts a minimal projection into the local courses table.
type SyncHandler struct {
	courses repository.CourseRepository
	client  *services.GolfCourseClient
	log     *zap.Logger
}

func NewSyncHandler(courses repository.CourseRepository, client *services.GolfCourseClient, log *zap.Logger) *SyncHandler {
	return &SyncHandler{courses: courses, client: client, log: log}
}

type SyncCoursesResponse struct {
	Synced int      `json:"synced"`
	Errors []string `json:"errors"`
}

// @Tags Sync
// @Summary Sync courses from the upstream golf-course API
// @Produce json
// @Param q query string true "Upstream search query"
// @Success 200 {object} handlers.SyncCoursesResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/sync/courses [post]
func (h *SyncHandler) SyncCourses(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "golf api client not configured")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Query parameter q is required")
		return
	}

	upstream, err := h.client.ListCourses(r.Context(), q)
	if err != nil {
		h.log.Error("course sync fetch failed", zap.String("query", q), zap.Error(err))
		writeJSONErrorResponse(w, http.StatusBadGateway, "upstream_error", "Failed to fetch courses")
		return
	}

	resp := SyncCoursesResponse{Errors: []string{}}
	now := time.Now().UTC()

	for _, c := range upstream {
		course := &models.Course{
			ID:         uuid.NewString(),
			ExternalID: c.ExternalID,
			ClubName:   c.ClubName,
			CourseName: c.CourseName,
			City:       c.City,
			State:      c.State,
			Holes:      c.Holes,
			SyncedAt:   now,
		}
		if err := h.courses.Upsert(r.Context(), course); err != nil {
			h.log.Warn("course upsert failed", zap.Int64("external_id", c.ExternalID), zap.Error(err))
			resp.Errors = append(resp.Errors, "upsert "+c.ClubName+": "+err.Error())
			continue
		}
		resp.Synced++
	}

	writeJSON(w, http.StatusOK, resp)
}

// @Tags Courses
// @Summary List locally synced courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/courses/local [get]
func (h *SyncHandler) ListLocalCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListAll(r.Context())
	if err != nil {
		h.log.Error("list local courses failed", zap.Error(err))
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_courses_failed", "Failed to list courses")
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}
