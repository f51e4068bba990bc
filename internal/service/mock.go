package service

import (
	"context"
	"sync"
)

// SentMail captures one delivery made through the MockMailTransport.
type SentMail struct {
	Recipient  string
	Subject    string
	Body       string
	Attachment []byte
}

// MockMailTransport records deliveries for tests instead of sending them.
type MockMailTransport struct {
	Err  error
	Sent []SentMail
	mu   sync.Mutex
}

var _ MailTransport = (*MockMailTransport)(nil)

// Send records the delivery, or returns the configured error.
func (m *MockMailTransport) Send(_ context.Context, recipient, subject, body string, attachment []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{
		Recipient:  recipient,
		Subject:    subject,
		Body:       body,
		Attachment: attachment,
	})
	return nil
}
