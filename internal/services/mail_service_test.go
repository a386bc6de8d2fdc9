package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetPasswordEmail(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{AppName: "EcoTours", ResetURL: "https://eco.example.com/reset/"}).(*smtpMailService)

	data := svc.resetPasswordEmail("a b+c")
	assert.Equal(t, "https://eco.example.com/reset?token=a+b%2Bc", data.ButtonURL)
	assert.Contains(t, data.Intro, "your account")
	assert.NotContains(t, data.Intro, "administrator")

	html, text, err := svc.renderEmail(data)
	require.NoError(t, err)
	assert.Contains(t, html, "EcoTours")
	assert.Contains(t, text, "Reset password: https://eco.example.com/reset?token=a+b%2Bc")
}
