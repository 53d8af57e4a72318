package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"strings"
	"time"
)

// Config holds mail provider settings.
type Config struct {
	Enable    bool   `yaml:"enable"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	From      string `yaml:"from"`
	To        string `yaml:"to"` // admin inbox for contact notifications
	ReplyTo   string `yaml:"reply_to"`
	ResendKey string `yaml:"resend_key"`
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends emails via SMTP or Resend.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. Uses Resend if configured, otherwise SMTP.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}
	if s.cfg.ResendKey != "" {
		return s.sendResend(msg)
	}
	return s.sendSMTP(msg)
}

func (s *Sender) sendSMTP(msg Message) error {
	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	if s.cfg.ReplyTo != "" {
		body.WriteString(fmt.Sprintf("Reply-To: %s\r\n", s.cfg.ReplyTo))
	}
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

func (s *Sender) sendResend(msg Message) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":    from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}

const contactNotifyTpl = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2 style="color:#333">New Contact Form Submission</h2>
  <div style="background:#f5f5f5;padding:20px;border-radius:5px">
    <p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <div style="white-space:pre-wrap;background:white;padding:15px;border-radius:3px">{{.Message}}</div>
  </div>
  <p style="color:#666;font-size:12px;margin-top:20px">
    This message was sent from the contact form on your blog.
  </p>
</div>`

const autoReplyTpl = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2 style="color:#333">Thank You for Your Message</h2>
  <p>Hi {{.Name}},</p>
  <p>Thank you for reaching out! I've received your message and will get back to you as soon as possible.</p>
  <p>Best regards,<br>{{.SiteName}}</p>
  <hr style="border:none;border-top:1px solid #eee;margin:30px 0">
  <p style="color:#666;font-size:12px">
    This is an automated response. Please do not reply to this email.
  </p>
</div>`

// ContactNotifyData is the data for the admin contact notification.
type ContactNotifyData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// AutoReplyData is the data for the auto-reply sent to the submitter.
type AutoReplyData struct {
	Name     string
	SiteName string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactNotify forwards a contact form submission to the admin inbox.
func (s *Sender) SendContactNotify(data ContactNotifyData) error {
	if strings.TrimSpace(s.cfg.To) == "" {
		return fmt.Errorf("mail: admin recipient not configured")
	}
	html, err := renderTemplate(contactNotifyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{s.cfg.To},
		Subject: fmt.Sprintf("[Contact Form] %s", data.Subject),
		HTML:    html,
	})
}

// SendAutoReply confirms receipt to the person who submitted the form.
func (s *Sender) SendAutoReply(to, subject string, data AutoReplyData) error {
	if strings.TrimSpace(data.SiteName) == "" {
		data.SiteName = "Blog"
	}
	html, err := renderTemplate(autoReplyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Re: %s", subject),
		HTML:    html,
	})
}
