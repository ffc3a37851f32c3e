package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"hostlane/internal/config"
)

type IMailService interface {
	SendOrderReceived(to, orderID, planName string, totalMinor int64) error
	SendPasswordReset(to, token string) error
}

type smtpMailService struct {
	cfg     config.SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg config.SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("mailHTML").Parse(baseHTMLTemplate))
	textTpl := template.Must(template.New("mailText").Parse(plainTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

func (s *smtpMailService) SendOrderReceived(to, orderID, planName string, totalMinor int64) error {
	subject := "We received your order"
	link := fmt.Sprintf("%s/orders/%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), url.PathEscape(orderID))

	html, text, err := s.renderEmail(emailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"Your order for %s (PKR %d.%02d) is in. We verify payment proofs within 24 hours and will email you once your server is ready.",
			planName, totalMinor/100, totalMinor%100),
		ButtonURL: link,
		ButtonTxt: "View Order",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	subject := "Reset your password"
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	html, text, err := s.renderEmail(emailData{
		Title:     subject,
		Intro:     "We received a request to reset your password. Click the button below to continue. If you didn't request this, you can safely ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

type emailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #0f172a; color: #ffffff; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 40px 16px; box-sizing: border-box; }
    .container { width: 100%; max-width: 600px; margin: 0 auto; background: #1e293b; border-radius: 16px; overflow: hidden; }
    .header { padding: 32px 32px 24px; border-bottom: 1px solid rgba(148, 163, 184, 0.1); }
    .brand { font-weight: 700; letter-spacing: 0.5px; font-size: 22px; color: #60a5fa; text-transform: uppercase; }
    .hero { padding: 40px 32px; }
    h1 { margin: 0 0 16px; font-size: 28px; font-weight: 700; color: #f1f5f9; line-height: 1.3; }
    p { margin: 0 0 20px; line-height: 1.7; color: #cbd5e1; font-size: 16px; }
    .btn { display: inline-block; padding: 16px 32px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 12px; font-weight: 600; font-size: 16px; }
    .muted { color: #94a3b8; font-size: 13px; line-height: 1.6; margin: 0; }
    .link-text { color: #60a5fa; text-decoration: none; word-break: break-all; font-size: 13px; display: inline-block; margin-top: 8px; }
    .footer { padding: 24px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid rgba(148, 163, 184, 0.1); }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <div class="brand">{{.AppName}}</div>
      </div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        {{if .ButtonURL}}
          <div class="btn-container">
            <a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a>
          </div>
          <p class="muted">
            If the button doesn't work, copy and paste this link into your browser:
          </p>
          <a href="{{.ButtonURL}}" class="link-text">{{.ButtonURL}}</a>
        {{end}}
      </div>
      <div class="footer">
        © {{.Year}} {{.AppName}}. All rights reserved.
      </div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data emailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
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

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.deliver(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	return s.deliver(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%q <%s>", name, s.cfg.From)
}
