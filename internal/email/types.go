package email

import "fmt"

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Config holds SMTP connection settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("email config: smtp host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("email config: smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("email config: from address is required")
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
