package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/config"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
	"github.com/radion-x/ODI-Aaron-3/internal/repository"
)

func newTestAssessmentService(t *testing.T) *AssessmentService {
	t.Helper()
	store, err := repository.NewFileAssessmentStore(filepath.Join(t.TempDir(), "assessments_data.json"))
	require.NoError(t, err)

	// AI and SMTP unconfigured: canned observations, skipped emails
	interpreter := NewInterpreterService(&config.AIConfig{TimeoutMS: 1000})
	mailer := NewMailerService(&config.SMTPConfig{})
	return NewAssessmentService(catalog.Default(), store, interpreter, mailer)
}

func validUser() model.UserDetails {
	return model.UserDetails{Name: "Jane Citizen", Email: "jane@example.com"}
}

func validResult(t *testing.T, value int) model.AssessmentResult {
	t.Helper()
	cat := catalog.BackPain()
	responses := make([]model.ResponseRecord, 0, len(cat.Questions))
	total := 0
	for _, q := range cat.Questions {
		responses = append(responses, model.ResponseRecord{QuestionID: q.ID, Value: value, Score: value})
		total += value
	}

	severity := model.SeverityMinimal
	switch {
	case total > 40:
		severity = model.SeverityBedBound
	case total > 30:
		severity = model.SeverityCrippled
	case total > 20:
		severity = model.SeveritySevere
	case total > 10:
		severity = model.SeverityModerate
	}

	return model.AssessmentResult{
		CatalogID:     catalog.BackPainID,
		Responses:     responses,
		TotalScore:    total,
		MaxScore:      50,
		SeverityLevel: severity,
		CompletedAt:   time.Now().UTC(),
	}
}

func TestValidateAcceptsWellFormedResult(t *testing.T) {
	svc := newTestAssessmentService(t)
	assert.NoError(t, svc.Validate(validUser(), validResult(t, 2)))
}

func TestValidateRejections(t *testing.T) {
	svc := newTestAssessmentService(t)

	tests := []struct {
		name   string
		user   model.UserDetails
		mutate func(*model.AssessmentResult)
	}{
		{"missing user details", model.UserDetails{}, func(r *model.AssessmentResult) {}},
		{"unknown catalog", validUser(), func(r *model.AssessmentResult) { r.CatalogID = "oswestryNeck" }},
		{"unknown question", validUser(), func(r *model.AssessmentResult) { r.Responses[0].QuestionID = "ghost" }},
		{"duplicate question", validUser(), func(r *model.AssessmentResult) { r.Responses[1] = r.Responses[0] }},
		{"value out of range", validUser(), func(r *model.AssessmentResult) { r.Responses[0].Value = 9 }},
		{"score not derived from value", validUser(), func(r *model.AssessmentResult) { r.Responses[0].Score = 5 }},
		{"total mismatch", validUser(), func(r *model.AssessmentResult) { r.TotalScore = 49 }},
		{"max mismatch", validUser(), func(r *model.AssessmentResult) { r.MaxScore = 24 }},
		{"severity mismatch", validUser(), func(r *model.AssessmentResult) { r.SeverityLevel = model.SeverityBedBound }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validResult(t, 2)
			tt.mutate(&result)
			err := svc.Validate(tt.user, result)
			assert.ErrorIs(t, err, ErrInvalidAssessment)
		})
	}
}

func TestSavePersistsValidatedResult(t *testing.T) {
	svc := newTestAssessmentService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, validUser(), validResult(t, 2)))

	records, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "jane@example.com", records[0].UserDetails.Email)
	assert.Equal(t, 20, records[0].AssessmentData.TotalScore)
}

func TestSaveRejectsInvalidResult(t *testing.T) {
	svc := newTestAssessmentService(t)
	ctx := context.Background()

	result := validResult(t, 2)
	result.TotalScore = 999
	assert.ErrorIs(t, svc.Save(ctx, validUser(), result), ErrInvalidAssessment)

	records, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "rejected submissions are never persisted")
}

func TestSubmitPipelineWithoutRelays(t *testing.T) {
	svc := newTestAssessmentService(t)

	outcome, err := svc.Submit(context.Background(), validUser(), validResult(t, 2))
	require.NoError(t, err)

	assert.True(t, outcome.Saved)
	assert.NotEmpty(t, outcome.Observation, "canned observation still produced")
	assert.False(t, outcome.OperatorEmailed, "no relay configured")
	assert.False(t, outcome.UserEmailed)

	records, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSubmitStopsOnValidationFailure(t *testing.T) {
	svc := newTestAssessmentService(t)

	result := validResult(t, 2)
	result.Responses[0].Value = -1

	outcome, err := svc.Submit(context.Background(), validUser(), result)
	assert.ErrorIs(t, err, ErrInvalidAssessment)
	assert.Nil(t, outcome)
}

func TestEmailUserWithoutRelayFails(t *testing.T) {
	svc := newTestAssessmentService(t)
	err := svc.EmailUser(validUser(), validResult(t, 2), "observation")
	assert.Error(t, err)
}
