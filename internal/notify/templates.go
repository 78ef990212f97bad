package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/folio/backend/internal/model"
)

// Rendered email bodies for the four outbound messages: owner
// notification and auto-reply for contact submissions, confirmation
// and owner notice for meeting requests.

var submissionNotifyTmpl = template.Must(template.New("submission_notify").Parse(`
<h2>New contact form submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{if .PreferredContact}}<p><strong>Preferred contact:</strong> {{.PreferredContact}}</p>{{end}}
{{if .HearAbout}}<p><strong>Heard about via:</strong> {{.HearAbout}}</p>{{end}}
{{if .Location}}<p><strong>Location:</strong> {{.Location}}</p>{{end}}
{{if .Subscribe}}<p>Subscribed to the newsletter.</p>{{end}}
{{if .FileURLs}}<p><strong>Attachments:</strong></p><ul>{{range .FileURLs}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>{{end}}
`))

var submissionReplyTmpl = template.Must(template.New("submission_reply").Parse(`
<h2>Thanks for reaching out, {{.Name}}!</h2>
<p>Your message "{{.Subject}}" has been received. I usually reply within
one or two business days.</p>
<p>— Sent automatically from the portfolio site.</p>
`))

var meetingConfirmTmpl = template.Must(template.New("meeting_confirm").Parse(`
<h2>Meeting confirmed</h2>
<p>Hi {{.Name}}, your {{.Type}} meeting is scheduled for
<strong>{{.Date}} at {{.Time}}</strong>.</p>
<p>Join link: <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>
`))

var meetingNotifyTmpl = template.Must(template.New("meeting_notify").Parse(`
<h2>New meeting request</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) scheduled a {{.Type}} meeting
for {{.Date}} at {{.Time}}.</p>
<p>Join link: <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>
`))

// SubmissionNotification builds the owner-facing email for a submission.
func SubmissionNotification(to string, sub *model.ContactSubmission) (Email, error) {
	var b strings.Builder
	if err := submissionNotifyTmpl.Execute(&b, sub); err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("Portfolio contact: %s", sub.Subject),
		HTML:    b.String(),
	}, nil
}

// SubmissionAutoReply builds the submitter-facing acknowledgement.
func SubmissionAutoReply(sub *model.ContactSubmission) (Email, error) {
	var b strings.Builder
	if err := submissionReplyTmpl.Execute(&b, sub); err != nil {
		return Email{}, err
	}
	return Email{
		To:      sub.Email,
		Subject: "Thanks for your message",
		HTML:    b.String(),
	}, nil
}

// MeetingConfirmation builds the requester-facing confirmation email.
func MeetingConfirmation(m *model.MeetingRequest) (Email, error) {
	var b strings.Builder
	if err := meetingConfirmTmpl.Execute(&b, m); err != nil {
		return Email{}, err
	}
	return Email{
		To:      m.Email,
		Subject: fmt.Sprintf("Meeting confirmed: %s at %s", m.Date, m.Time),
		HTML:    b.String(),
	}, nil
}

// MeetingNotification builds the owner-facing meeting notice.
func MeetingNotification(to string, m *model.MeetingRequest) (Email, error) {
	var b strings.Builder
	if err := meetingNotifyTmpl.Execute(&b, m); err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		ReplyTo: m.Email,
		Subject: fmt.Sprintf("New meeting request from %s", m.Name),
		HTML:    b.String(),
	}, nil
}
