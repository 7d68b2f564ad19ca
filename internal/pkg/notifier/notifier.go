package notifier

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Notifier delivers lifecycle notifications to people. Delivery is
// best-effort: callers invoke it after their transaction has committed and
// must not let a delivery failure affect the committed write.
type Notifier interface {
	SendMail(toEmail, subject, body string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPNotifier implements Notifier over plain SMTP
type SMTPNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		logger: logger,
	}
}

// SendMail sends a plain-text email. When SMTP credentials are not
// configured the message is logged instead, so development setups see the
// notifications without a mail server.
func (n *SMTPNotifier) SendMail(toEmail, subject, body string) error {
	if n.config.Username == "" || n.config.Password == "" {
		n.logger.Info().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Str("body", body).
			Msg("SMTP credentials not configured - notification logged instead of sent")
		return nil
	}

	auth := smtp.PlainAuth(
		"",
		n.config.Username,
		n.config.Password,
		n.config.Host,
	)

	from := fmt.Sprintf("%s <%s>", n.config.FromName, n.config.FromEmail)
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, toEmail, subject, body)
	serverAddress := n.config.Host + ":" + strconv.Itoa(n.config.Port)

	if n.config.UseTLS {
		return n.sendWithTLS(serverAddress, auth, toEmail, message)
	}

	if err := smtp.SendMail(serverAddress, auth, n.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		n.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send notification email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) sendWithTLS(serverAddress string, auth smtp.Auth, toEmail, message string) error {
	tlsConfig := &tls.Config{
		ServerName: n.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		n.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(n.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
