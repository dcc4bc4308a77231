package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"time"

	"github.com/Dan9191/bizplan/internal/config"
	"github.com/Dan9191/bizplan/internal/export"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// buildExportEmail composes the message carrying the forecast workbook
func (s *Sender) buildExportEmail(to, username string, workbook []byte) (*email.Email, error) {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Financial Forecast"

	body := fmt.Sprintf("Dear %s,\n\n", username)
	body += fmt.Sprintf(
		"Attached is your financial forecast generated on %s.\n"+
			"It contains the quarterly revenue forecast, the multi-year profit and loss projection\n"+
			"and, if you submitted a loan, its amortization schedule.\n",
		time.Now().Format("2006-01-02 15:04"),
	)
	body += "\nBest regards,\nBusiness Plan Service"
	e.Text = []byte(body)

	if _, err := e.Attach(bytes.NewReader(workbook), export.FileName, export.ContentType); err != nil {
		return nil, fmt.Errorf("failed to attach workbook: %w", err)
	}
	return e, nil
}

// SendExport mails an exported workbook to the user
func (s *Sender) SendExport(to, username string, workbook []byte) error {
	e, err := s.buildExportEmail(to, username, workbook)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
