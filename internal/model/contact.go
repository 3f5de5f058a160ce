package model

// ContactForm is a single contact-page submission. Subject is optional.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailMessage is what actually goes out through the transport.
// Addressing (from/to) is owned by the transport configuration.
type EmailMessage struct {
	ReplyTo string
	Subject string
	Body    string
}
