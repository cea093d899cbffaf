package services

// EmailSender delivers a plain-text message to a single recipient. The
// password reset flow treats delivery as best effort; a send failure never
// changes the HTTP response.
type EmailSender interface {
	Send(to string, subject string, body string) error
}
