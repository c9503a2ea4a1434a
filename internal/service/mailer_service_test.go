package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radion-x/ODI-Aaron-3/internal/config"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

func mailerResult() model.AssessmentResult {
	return model.AssessmentResult{
		CatalogID: "oswestryBack",
		Responses: []model.ResponseRecord{
			{QuestionID: "painIntensity", Value: 2, Score: 2},
			{QuestionID: "walking", Value: 4, Score: 4},
		},
		TotalScore:    6,
		MaxScore:      50,
		SeverityLevel: model.SeverityMinimal,
		CompletedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestMailerIsEnabled(t *testing.T) {
	disabled := NewMailerService(&config.SMTPConfig{})
	assert.False(t, disabled.IsEnabled())

	enabled := NewMailerService(&config.SMTPConfig{
		Host: "smtp.example.com", Port: 587, Sender: "noreply@example.com",
	})
	assert.True(t, enabled.IsEnabled())
}

func TestOperatorTemplateIncludesResponses(t *testing.T) {
	svc := NewMailerService(&config.SMTPConfig{})
	data := svc.newEmailData(
		model.UserDetails{Name: "Jane Citizen", Email: "jane@example.com"},
		mailerResult(),
		"First line.\nSecond line.",
	)

	var body bytes.Buffer
	require.NoError(t, svc.operatorTmpl.Execute(&body, data))
	html := body.String()

	assert.Contains(t, html, "Jane Citizen")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "6 / 50")
	assert.Contains(t, html, string(model.SeverityMinimal))
	assert.Contains(t, html, "painIntensity")
	assert.Contains(t, html, "walking")
	assert.Contains(t, html, "First line.<br>Second line.")
}

func TestUserTemplateOmitsRawResponses(t *testing.T) {
	svc := NewMailerService(&config.SMTPConfig{})
	data := svc.newEmailData(
		model.UserDetails{Name: "Jane Citizen", Email: "jane@example.com"},
		mailerResult(),
		"A neutral observation.",
	)

	var body bytes.Buffer
	require.NoError(t, svc.userTmpl.Execute(&body, data))
	html := body.String()

	assert.Contains(t, html, "Hello Jane Citizen")
	assert.Contains(t, html, "6 / 50")
	assert.Contains(t, html, "A neutral observation.")
	assert.NotContains(t, html, "painIntensity", "user email never carries raw responses")
}

func TestObservationIsEscaped(t *testing.T) {
	svc := NewMailerService(&config.SMTPConfig{})
	data := svc.newEmailData(
		model.UserDetails{Name: "Jane"},
		mailerResult(),
		"<script>alert(1)</script>",
	)

	var body bytes.Buffer
	require.NoError(t, svc.userTmpl.Execute(&body, data))
	assert.NotContains(t, body.String(), "<script>")
}

func TestSendOperatorSummaryRequiresRecipient(t *testing.T) {
	svc := NewMailerService(&config.SMTPConfig{Host: "smtp.example.com", Sender: "noreply@example.com"})
	err := svc.SendOperatorSummary(model.UserDetails{Name: "Jane"}, mailerResult(), "obs")
	assert.Error(t, err)
}

func TestSendUserSummaryRequiresAddress(t *testing.T) {
	svc := NewMailerService(&config.SMTPConfig{Host: "smtp.example.com", Sender: "noreply@example.com"})
	err := svc.SendUserSummary(model.UserDetails{Name: "Jane"}, mailerResult(), "obs")
	assert.Error(t, err)
}
