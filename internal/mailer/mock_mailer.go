package mailer

import (
	"sync"
)

type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records emails instead of delivering them. A non-nil Err fails
// every Send and records nothing.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
	Err    error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// GetSentEmails returns a snapshot of the recorded emails in send order.
func (m *MockMailer) GetSentEmails() []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = nil
	m.Err = nil
}
