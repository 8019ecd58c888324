// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	Text    string
	HTML    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
// A returned error carries no delivery guarantee beyond "this attempt failed";
// callers treat failures as non-fatal and log them.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// SendPushInput represents the input for sending a push notification.
type SendPushInput struct {
	Token string
	Title string
	Body  string
}

// PushSender defines the interface for sending push notifications.
type PushSender interface {
	SendPush(ctx context.Context, input SendPushInput) error
}
