package smtp

import (
	"fmt"
	"net/smtp"
	"regexp"

	"dentaldesk-service/internal/app/drivers/mailer"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"
)

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) SMTPService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *smtpService) SendHTMLEmail(to, subject, htmlBody string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *smtpService) ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
