// Package session implements the question-by-question assessment wizard as a
// state machine over one catalog. A session is driven by a single interactive
// user; callers must serialize Answer/Advance/Retreat/Restart per instance.
package session

import (
	"fmt"
	"time"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
	"github.com/radion-x/ODI-Aaron-3/internal/scoring"
)

// ValidationError reports an answer value that is out of range for the
// question it targets.
type ValidationError struct {
	QuestionID string
	Value      int
	Min        int
	Max        int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer %d out of range [%d,%d] for question %q",
		e.Value, e.Min, e.Max, e.QuestionID)
}

// TransitionError reports an operation that is invalid for the session's
// current state. These are caller contract violations, never silent no-ops.
type TransitionError struct {
	Op     string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Session is one respondent's traversal of a catalog's questions. States are
// AwaitingAnswer(index) for each question plus the terminal Completed state,
// from which only Restart is valid.
type Session struct {
	cat   *catalog.Catalog
	index int

	// responses holds exactly one record per answered question id.
	// order remembers first-answer traversal order; re-answering a question
	// replaces its value in place.
	responses map[string]model.ResponseRecord
	order     []string

	result *model.AssessmentResult
}

// New starts a session at the first question of the given catalog
func New(cat *catalog.Catalog) *Session {
	return &Session{
		cat:       cat,
		responses: make(map[string]model.ResponseRecord),
	}
}

// Completed reports whether the session has reached its terminal state
func (s *Session) Completed() bool {
	return s.result != nil
}

// Result returns the immutable assessment result, or nil until completion
func (s *Session) Result() *model.AssessmentResult {
	return s.result
}

// CurrentIndex returns the index of the question awaiting an answer
func (s *Session) CurrentIndex() int {
	return s.index
}

// CurrentQuestion returns the definition of the question awaiting an answer
func (s *Session) CurrentQuestion() (model.QuestionDefinition, error) {
	if s.Completed() {
		return model.QuestionDefinition{}, &TransitionError{Op: "current", Reason: "session is completed"}
	}
	return s.cat.Questions[s.index], nil
}

// CurrentResponse returns the recorded answer for the current question, if any
func (s *Session) CurrentResponse() (model.ResponseRecord, bool) {
	if s.Completed() {
		return model.ResponseRecord{}, false
	}
	rec, ok := s.responses[s.cat.Questions[s.index].ID]
	return rec, ok
}

// AnsweredCount returns how many questions have a recorded answer, for
// progress display.
func (s *Session) AnsweredCount() int {
	return len(s.responses)
}

// QuestionCount returns the number of questions in the catalog
func (s *Session) QuestionCount() int {
	return len(s.cat.Questions)
}

// Answer records or replaces the response for the current question. Answers
// are idempotent per question, last-write-wins, and do not auto-advance.
func (s *Session) Answer(value int) error {
	if s.Completed() {
		return &TransitionError{Op: "answer", Reason: "session is completed"}
	}

	q := s.cat.Questions[s.index]
	score, err := scoring.ScoreForAnswer(q, value)
	if err != nil {
		return &ValidationError{
			QuestionID: q.ID,
			Value:      value,
			Min:        q.MinAnswerValue(),
			Max:        q.MaxAnswerValue(),
		}
	}

	if _, seen := s.responses[q.ID]; !seen {
		s.order = append(s.order, q.ID)
	}
	s.responses[q.ID] = model.ResponseRecord{QuestionID: q.ID, Value: value, Score: score}
	return nil
}

// Advance moves to the next question, or completes the session from the last
// one. Advancing without a recorded answer for the current question is a
// contract violation.
func (s *Session) Advance() error {
	if s.Completed() {
		return &TransitionError{Op: "advance", Reason: "session is completed"}
	}

	q := s.cat.Questions[s.index]
	if _, ok := s.responses[q.ID]; !ok {
		return &TransitionError{Op: "advance", Reason: fmt.Sprintf("question %q has no recorded answer", q.ID)}
	}

	if s.index < len(s.cat.Questions)-1 {
		s.index++
		return nil
	}
	return s.complete()
}

// Retreat moves back to the previous question without discarding any
// recorded answers.
func (s *Session) Retreat() error {
	if s.Completed() {
		return &TransitionError{Op: "retreat", Reason: "session is completed"}
	}
	if s.index == 0 {
		return &TransitionError{Op: "retreat", Reason: "already at the first question"}
	}
	s.index--
	return nil
}

// Restart discards all recorded answers and returns to the first question.
// It is valid from any state, including Completed; a previously produced
// result is never mutated, the next completion creates a new one.
func (s *Session) Restart() {
	s.index = 0
	s.responses = make(map[string]model.ResponseRecord)
	s.order = nil
	s.result = nil
}

func (s *Session) complete() error {
	responses := make([]model.ResponseRecord, 0, len(s.order))
	for _, id := range s.order {
		responses = append(responses, s.responses[id])
	}

	total := scoring.Score(responses)
	max := scoring.MaxScore(s.cat.Questions)
	severity, err := scoring.Classify(total, max)
	if err != nil {
		return err
	}

	s.result = &model.AssessmentResult{
		CatalogID:     s.cat.ID,
		Responses:     responses,
		TotalScore:    total,
		MaxScore:      max,
		SeverityLevel: severity,
		CompletedAt:   time.Now().UTC(),
	}
	return nil
}
