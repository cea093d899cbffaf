package models

import "time"

// Course is a locally cached projection of an upstream golf-course record.
// Only the fields the app needs are kept; course detail requests are proxied
// to the upstream API untouched.
type Course struct {
	ID         string    `json:"id"`
	ExternalID int64     `json:"external_id"`
	ClubName   string    `json:"club_name"`
	CourseName string    `json:"course_name,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	Holes      int       `json:"holes,omitempty"`
	SyncedAt   time.Time `json:"synced_at"`
}
