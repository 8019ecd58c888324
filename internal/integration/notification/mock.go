// Package notification implements the email and push delivery boundary.
package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	mu         sync.Mutex
	SentEmails []adapter.SendEmailInput
	FailFor    map[string]error // keyed by recipient address
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{
		SentEmails: make([]adapter.SendEmailInput, 0),
		FailFor:    make(map[string]error),
	}
}

// Send implements the adapter.EmailSender interface for testing.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailFor[input.To]; ok {
		return nil, domainerror.NewDeliveryError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"mock delivery failure",
			err,
		)
	}

	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.SentEmails)),
	}, nil
}

// SetFailure configures the mock to fail for the given recipient.
func (m *MockEmailSender) SetFailure(recipient string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailFor[recipient] = err
}

// MockPushSender is a mock implementation for testing.
type MockPushSender struct {
	mu        sync.Mutex
	SentPushs []adapter.SendPushInput
	FailFor   map[string]error // keyed by device token
}

// NewMockPushSender creates a new mock push sender.
func NewMockPushSender() *MockPushSender {
	return &MockPushSender{
		SentPushs: make([]adapter.SendPushInput, 0),
		FailFor:   make(map[string]error),
	}
}

// SendPush implements the adapter.PushSender interface for testing.
func (m *MockPushSender) SendPush(_ context.Context, input adapter.SendPushInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailFor[input.Token]; ok {
		return domainerror.NewDeliveryError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"mock delivery failure",
			err,
		)
	}

	m.SentPushs = append(m.SentPushs, input)
	return nil
}

// SetFailure configures the mock to fail for the given device token.
func (m *MockPushSender) SetFailure(token string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailFor[token] = err
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*MockEmailSender)(nil)
	_ adapter.PushSender  = (*MockPushSender)(nil)
)
