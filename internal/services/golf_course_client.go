package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrCourseNotFound is returned when the upstream API has no course with the
// requested id.
var ErrCourseNotFound = errors.New("course not found")

// GolfCourse is the minimal projection kept from upstream search results.
// Course detail responses are passed through unparsed.
type GolfCourse struct {
	ExternalID int64  `json:"id"`
	ClubName   string `json:"club_name"`
	CourseName string `json:"course_name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Holes      int    `json:"holes"`
}

// GolfCourseClient talks to the third-party golf-course data API. Requests
// authenticate with a static API key header.
type GolfCourseClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGolfCourseClient(baseURL, apiKey string) *GolfCourseClient {
	return &GolfCourseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *GolfCourseClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// GetCourse fetches one course by upstream id and returns the body untouched.
func (c *GolfCourseClient) GetCourse(ctx context.Context, id string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("course id is required")
	}
	return c.get(ctx, "/v1/courses/"+url.PathEscape(id), nil)
}

// SearchCourses runs an upstream search and returns the body untouched.
func (c *GolfCourseClient) SearchCourses(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is required")
	}
	return c.get(ctx, "/v1/search", url.Values{"search_query": {query}})
}

// ListCourses runs a search and leniently extracts the course list for local
// syncing. Upstream responses wrap the list under varying keys, so both a
// bare array and common wrapper shapes are accepted.
func (c *GolfCourseClient) ListCourses(ctx context.Context, query string) ([]GolfCourse, error) {
	body, err := c.SearchCourses(ctx, query)
	if err != nil {
		return nil, err
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err != nil {
		var wrapper map[string]json.RawMessage
		if err2 := json.Unmarshal(body, &wrapper); err2 != nil {
			return nil, fmt.Errorf("golf api search: invalid json: %w", err)
		}
		for _, k := range []string{"courses", "results", "data", "items"} {
			if raw, ok := wrapper[k]; ok {
				if err := json.Unmarshal(raw, &arr); err == nil {
					break
				}
			}
		}
		if arr == nil {
			return nil, fmt.Errorf("golf api search: unexpected json object")
		}
	}

	out := make([]GolfCourse, 0, len(arr))
	for _, item := range arr {
		var course struct {
			ID         int64  `json:"id"`
			ClubName   string `json:"club_name"`
			CourseName string `json:"course_name"`
			Location   struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"location"`
			Holes int `json:"holes"`
		}
		if err := json.Unmarshal(item, &course); err != nil {
			continue
		}
		if course.ID == 0 || course.ClubName == "" {
			continue
		}
		out = append(out, GolfCourse{
			ExternalID: course.ID,
			ClubName:   course.ClubName,
			CourseName: course.CourseName,
			City:       course.Location.City,
			State:      course.Location.State,
			Holes:      course.Holes,
		})
	}

	return out, nil
}

func (c *GolfCourseClient) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, errors.New("golf api baseURL is required")
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, err
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Key "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCourseNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("golf api request failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.RawMessage(body), nil
}
