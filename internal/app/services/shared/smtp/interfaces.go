package smtp

type SMTPService interface {
	SendEmail(to, subject, body string) error
	SendHTMLEmail(to, subject, htmlBody string) error
	ValidateEmail(email string) bool
}
