package model

import "time"

// Preferred contact methods accepted on a submission.
const (
	ContactViaEmail    = "email"
	ContactViaPhone    = "phone"
	ContactViaWhatsApp = "whatsapp"
)

// ContactSubmission represents one contact form submission.
// Submissions are insert-only: a record is never updated or deleted by
// this service after creation.
type ContactSubmission struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferredContact,omitempty"` // "email" | "phone" | "whatsapp"
	HearAbout        string `json:"hearAbout,omitempty"`
	Subscribe        bool   `json:"subscribe"`
	SaveInfo         bool   `json:"saveInfo"`
	// FileURLs holds public URLs of uploaded attachments, in upload order.
	FileURLs []string `json:"fileUrls"`
	// Location is client-supplied free text; the server never validates it.
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactListOptions carries filter and pagination parameters for the
// admin submission listing.
type ContactListOptions struct {
	// Subscribe filters by newsletter opt-in: "", "all", "yes", "no".
	// Empty string and "all" return every submission.
	Subscribe string
	Limit     int
	Offset    int
}
