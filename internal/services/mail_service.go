package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"whatsup/pkg/utils"
)

type MailServiceInterface interface {
	SendInvite(to, subject, body string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@yourapp.com"
	FromName string // display name
	UseSSL   bool   // true for SMTPS 465, false for STARTTLS 587
	AppName  string // used in header and footer
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("inviteHTML").Parse(inviteHTMLTemplate)),
		textTpl: template.Must(template.New("inviteText").Parse(inviteTextTemplate)),
	}
}

type emailData struct {
	Title   string
	Intro   string
	AppName string
	Year    int
}

const inviteHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:24px;background:#1b3a2f;color:#faf6ee;font-family:Georgia,serif;">
  <div style="max-width:600px;margin:0 auto;background:#234c3c;border-radius:12px;overflow:hidden;">
    <div style="padding:24px;border-bottom:1px solid rgba(250,246,238,0.15);font-weight:700;letter-spacing:1px;color:#d4af5f;">{{.AppName}}</div>
    <div style="padding:32px 24px;">
      <h1 style="margin:0 0 16px;font-size:24px;color:#faf6ee;">{{.Title}}</h1>
      <p style="margin:0;line-height:1.7;color:#e4dcc8;">{{.Intro}}</p>
    </div>
    <div style="padding:16px 24px;color:#9bb8a5;font-size:12px;">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const inviteTextTemplate = `{{.Title}}

{{.Intro}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendInvite(to, subject, body string) error {
	if s.cfg.Host == "" {
		return utils.ErrMailNotConfigured
	}

	data := emailData{
		Title:   subject,
		Intro:   body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.cfg.From
	if s.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
	}
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = tls.Dial("tcp", addr, tlsCfg)
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		}
	}

	if ok, _ := c.Extension("AUTH"); ok {
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
