package model

import "time"

// MeetingStatusScheduled is the only status this service ever assigns.
// There is no update or cancel path for meeting requests.
const MeetingStatusScheduled = "scheduled"

// MeetingRequest represents a meeting scheduled via the site.
type MeetingRequest struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// Status is fixed to "scheduled" at creation.
	Status string `json:"status"`
	// MeetingLink is a synthesized room URL (timestamp plus random
	// suffix). The room is not provisioned on the video provider; it
	// materializes when the first participant opens the link.
	MeetingLink string    `json:"meetingLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MeetingListOptions carries pagination parameters for the admin
// meeting listing.
type MeetingListOptions struct {
	Limit  int
	Offset int
}
