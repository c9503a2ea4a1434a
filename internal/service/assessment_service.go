package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
	"github.com/radion-x/ODI-Aaron-3/internal/repository"
	"github.com/radion-x/ODI-Aaron-3/internal/scoring"
)

// ErrInvalidAssessment marks a submission rejected by boundary validation
var ErrInvalidAssessment = errors.New("invalid assessment")

// SubmissionOutcome reports what the relay pipeline did for one submission
type SubmissionOutcome struct {
	Observation     string `json:"observation"`
	Saved           bool   `json:"saved"`
	OperatorEmailed bool   `json:"operatorEmailed"`
	UserEmailed     bool   `json:"userEmailed"`
}

// AssessmentService validates completed assessments at the relay boundary
// and runs the submission pipeline: persist, interpret, email. Each step
// takes the previous step's typed output; a failed step stops the chain.
type AssessmentService struct {
	catalogs    *catalog.Registry
	store       repository.AssessmentStore
	interpreter *InterpreterService
	mailer      *MailerService
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	catalogs *catalog.Registry,
	store repository.AssessmentStore,
	interpreter *InterpreterService,
	mailer *MailerService,
) *AssessmentService {
	return &AssessmentService{
		catalogs:    catalogs,
		store:       store,
		interpreter: interpreter,
		mailer:      mailer,
	}
}

// Validate checks an incoming assessment against its catalog before it is
// persisted or forwarded: every question id must exist, every score must be
// in range and equal the derived score for its value, and the totals and
// severity must match what the engine computes.
func (s *AssessmentService) Validate(user model.UserDetails, result model.AssessmentResult) error {
	if user.Name == "" || user.Email == "" {
		return fmt.Errorf("%w: user name and email are required", ErrInvalidAssessment)
	}

	cat, err := s.catalogs.Get(result.CatalogID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssessment, err)
	}

	seen := make(map[string]bool, len(result.Responses))
	for _, rec := range result.Responses {
		q, ok := cat.Question(rec.QuestionID)
		if !ok {
			return fmt.Errorf("%w: unknown question %q", ErrInvalidAssessment, rec.QuestionID)
		}
		if seen[rec.QuestionID] {
			return fmt.Errorf("%w: duplicate response for question %q", ErrInvalidAssessment, rec.QuestionID)
		}
		seen[rec.QuestionID] = true

		score, err := scoring.ScoreForAnswer(q, rec.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAssessment, err)
		}
		if rec.Score != score {
			return fmt.Errorf("%w: question %q score %d does not match value %d",
				ErrInvalidAssessment, rec.QuestionID, rec.Score, rec.Value)
		}
	}

	if total := scoring.Score(result.Responses); result.TotalScore != total {
		return fmt.Errorf("%w: total score %d does not match responses (%d)",
			ErrInvalidAssessment, result.TotalScore, total)
	}
	if max := scoring.MaxScore(cat.Questions); result.MaxScore != max {
		return fmt.Errorf("%w: max score %d does not match catalog (%d)",
			ErrInvalidAssessment, result.MaxScore, max)
	}

	severity, err := scoring.Classify(result.TotalScore, result.MaxScore)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssessment, err)
	}
	if result.SeverityLevel != severity {
		return fmt.Errorf("%w: severity %q does not match score (%q)",
			ErrInvalidAssessment, result.SeverityLevel, severity)
	}
	return nil
}

// Save validates the submission and appends it to the record store
func (s *AssessmentService) Save(ctx context.Context, user model.UserDetails, result model.AssessmentResult) error {
	if err := s.Validate(user, result); err != nil {
		return err
	}
	return s.store.Append(ctx, model.StoredAssessment{
		UserDetails:    user,
		AssessmentData: result,
	})
}

// Interpret produces the AI observation for a validated result and emails
// the operator-facing summary when a recipient is configured.
func (s *AssessmentService) Interpret(ctx context.Context, user model.UserDetails, result model.AssessmentResult) (string, bool, error) {
	observation, err := s.interpreter.Interpret(ctx, Summarize(result))
	if err != nil {
		return "", false, err
	}

	if !s.mailer.IsEnabled() || s.mailer.config.OperatorRecipient == "" {
		log.Printf("WARNING: operator email skipped, mail relay or recipient not configured")
		return observation, false, nil
	}
	if err := s.mailer.SendOperatorSummary(user, result, observation); err != nil {
		log.Printf("ERROR: operator email failed: %v", err)
		return observation, false, nil
	}
	return observation, true, nil
}

// EmailUser sends the respondent their own summary
func (s *AssessmentService) EmailUser(user model.UserDetails, result model.AssessmentResult, observation string) error {
	if !s.mailer.IsEnabled() {
		return fmt.Errorf("mail relay not configured")
	}
	return s.mailer.SendUserSummary(user, result, observation)
}

// Submit runs the full pipeline for one completed assessment: validate and
// save, interpret, email the operator, email the user. The user email is
// only attempted once the earlier steps have produced their outputs; a skip
// or failure of an email step does not undo the persisted record.
func (s *AssessmentService) Submit(ctx context.Context, user model.UserDetails, result model.AssessmentResult) (*SubmissionOutcome, error) {
	if err := s.Save(ctx, user, result); err != nil {
		return nil, err
	}
	outcome := &SubmissionOutcome{Saved: true}

	observation, operatorEmailed, err := s.Interpret(ctx, user, result)
	if err != nil {
		return outcome, err
	}
	outcome.Observation = observation
	outcome.OperatorEmailed = operatorEmailed

	if !s.mailer.IsEnabled() {
		log.Printf("WARNING: user email skipped, mail relay not configured")
		return outcome, nil
	}
	if err := s.mailer.SendUserSummary(user, result, observation); err != nil {
		log.Printf("ERROR: user email failed: %v", err)
		return outcome, nil
	}
	outcome.UserEmailed = true
	return outcome, nil
}

// GetAll reads back every persisted submission for verification
func (s *AssessmentService) GetAll(ctx context.Context) ([]model.StoredAssessment, error) {
	return s.store.All(ctx)
}
