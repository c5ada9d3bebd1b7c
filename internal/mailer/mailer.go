package mailer

// TemplateBookingConfirmed is the receipt sent after a booking is committed.
const TemplateBookingConfirmed = "booking_confirmed.tmpl"

// Mailer renders an embedded template with data and delivers it to recipient.
type Mailer interface {
	Send(recipient, templateFile string, data any) error
}
