package model

import "time"

// SeverityLevel is one band of the disability classification
type SeverityLevel string

const (
	SeverityMinimal  SeverityLevel = "Minimal disability"
	SeverityModerate SeverityLevel = "Moderate disability"
	SeveritySevere   SeverityLevel = "Severe disability"
	SeverityCrippled SeverityLevel = "Crippled"
	SeverityBedBound SeverityLevel = "Bed-bound or exaggerating symptoms"
)

// ResponseRecord is one recorded answer. Value is the selected option index
// for choice questions or the raw numeric value for scale questions; Score is
// derived from it by the engine.
type ResponseRecord struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
	Score      int    `json:"score"`
}

// AssessmentResult is a completed traversal of a catalog. It is created once,
// when the session reaches its terminal state, and never mutated afterwards.
// Responses are in traversal order, which is not necessarily catalog order if
// the respondent navigated back and re-answered.
type AssessmentResult struct {
	CatalogID     string           `json:"catalogId"`
	Responses     []ResponseRecord `json:"responses"`
	TotalScore    int              `json:"totalScore"`
	MaxScore      int              `json:"maxScore"`
	SeverityLevel SeverityLevel    `json:"severityLevel"`
	CompletedAt   time.Time        `json:"completedAt"`
}

// UserDetails identifies the respondent for persistence and email delivery
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoredAssessment is the persisted record shape: one element of the
// append-only JSON array written by the relay layer.
type StoredAssessment struct {
	UserDetails    UserDetails      `json:"userDetails"`
	AssessmentData AssessmentResult `json:"assessmentData"`
	ReceivedAt     time.Time        `json:"receivedAt"`
}
