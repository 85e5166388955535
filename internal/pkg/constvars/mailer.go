package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

	ReminderEmailSubject    = "Upcoming treatment plan reminder"
	ReminderEmailBodyFormat = "Hello %s,\r\n\r\nYour treatment plan %q is planned for %s. Please contact the practice if you need to reschedule.\r\n"
)
