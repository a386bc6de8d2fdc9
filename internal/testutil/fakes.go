package testutil

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

func NopLogger() *zap.Logger {
	return zap.NewNop()
}

// SentMail is one message captured by RecordingMailer.
type SentMail struct {
	To      string
	Subject string
	Body    string
	Token   string
}

// RecordingMailer keeps every message instead of sending it.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []SentMail
}

func (m *RecordingMailer) SendMailToNotifyUser(_ context.Context, to, subject, body, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *RecordingMailer) SendMailToResetPassword(_ context.Context, email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{To: email, Subject: "reset", Token: token})
	return nil
}

func (m *RecordingMailer) Messages() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMail(nil), m.Sent...)
}
