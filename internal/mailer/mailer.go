// Package mailer dispatches career application emails over SMTP. It is
// an optional collaborator: when SMTP is not configured the server runs
// without it and the application endpoint reports the feature disabled.
package mailer

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

// Application carries one career form submission, including the resume
// file forwarded verbatim as an attachment.
type Application struct {
	Name        string
	Email       string
	Phone       string
	Position    string
	CoverLetter string
	ResumeName  string
	Resume      []byte
}

// Mailer sends application emails through a single SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New creates a Mailer for the given SMTP account. from is the envelope
// sender; to is the inbox that receives applications.
func New(host string, port int, username, password, from, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}
}

// SendApplication delivers one application email. The SMTP dial happens
// per call; application volume does not justify a held connection.
func (m *Mailer) SendApplication(app Application) error {
	if err := m.dialer.DialAndSend(m.message(app)); err != nil {
		return fmt.Errorf("send application email: %w", err)
	}
	return nil
}

// message builds the application email, attaching the resume when present.
func (m *Mailer) message(app Application) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", app.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Job application: %s (%s)", app.Name, app.Position))

	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nPosition: %s\n\n%s\n",
		app.Name, app.Email, app.Phone, app.Position, app.CoverLetter,
	)
	msg.SetBody("text/plain", body)

	if len(app.Resume) > 0 {
		resume := app.Resume
		msg.Attach(app.ResumeName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(resume)
			return err
		}))
	}

	return msg
}
