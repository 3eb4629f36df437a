package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPProvider struct {
	config Config
	auth   smtp.Auth
}

func NewSMTPProvider(config Config) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config: config,
		auth:   auth,
	}
}

func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	message := p.buildMessage(email)

	if p.config.UseTLS {
		return p.sendTLS(email.To, message)
	}
	return smtp.SendMail(p.config.Addr(), p.auth, p.config.FromEmail, email.To, message)
}

func (p *SMTPProvider) SendPaymentReceipt(to string, gatewayID string, amount float64, currency string, tokens int) error {
	body := fmt.Sprintf(
		"Your payment %s for %.2f %s has been completed.\n%d tokens were added to your balance.\n",
		gatewayID, amount, currency, tokens,
	)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Payment confirmed",
		Body:    body,
	})
}

func (p *SMTPProvider) sendTLS(to []string, message []byte) error {
	tlsConfig := &tls.Config{ServerName: p.config.Host}

	conn, err := tls.Dial("tcp", p.config.Addr(), tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to dial TLS: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, p.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(p.config.FromEmail); err != nil {
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (p *SMTPProvider) buildMessage(email *Email) []byte {
	var b strings.Builder

	from := p.config.FromEmail
	if p.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	if email.IsHTML {
		b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n")
	} else {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(email.Body)

	return []byte(b.String())
}
