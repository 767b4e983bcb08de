package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

type smtpNotifier struct {
	cfg  SMTPConfig
	auth smtp.Auth
}

func NewSMTPNotifier(cfg SMTPConfig) Notifier {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &smtpNotifier{cfg: cfg, auth: auth}
}

func (n *smtpNotifier) Send(_ context.Context, subject, body, recipient string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := n.cfg.Host + ":" + n.cfg.Port
	return smtp.SendMail(addr, n.auth, n.cfg.From, []string{recipient}, []byte(msg.String()))
}
