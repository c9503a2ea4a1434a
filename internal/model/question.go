package model

// AnswerKind defines how a question is answered and scored
type AnswerKind string

const (
	AnswerKindChoice AnswerKind = "choice" // Ordered options, index = severity rank
	AnswerKindScale  AnswerKind = "scale"  // Numeric value within [Min,Max]
)

// ScaleBounds is the inclusive numeric range of a scale question
type ScaleBounds struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"minLabel,omitempty"`
	MaxLabel string `json:"maxLabel,omitempty"`
}

// QuestionDefinition is one question of a catalog. Definitions are immutable
// and fixed at process start. For choice questions the ordering of Options is
// the scoring contract: option 0 is least severe, the last option is most
// severe, and the selected index is the score.
type QuestionDefinition struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Kind    AnswerKind   `json:"kind"`
	Options []string     `json:"options,omitempty"` // choice only
	Scale   *ScaleBounds `json:"scale,omitempty"`   // scale only
}

// MaxAnswerValue returns the highest value a valid answer can take, which is
// also the question's maximum attainable score.
func (q QuestionDefinition) MaxAnswerValue() int {
	switch q.Kind {
	case AnswerKindScale:
		if q.Scale == nil {
			return 0
		}
		return q.Scale.Max
	default:
		return len(q.Options) - 1
	}
}

// MinAnswerValue returns the lowest value a valid answer can take.
func (q QuestionDefinition) MinAnswerValue() int {
	if q.Kind == AnswerKindScale && q.Scale != nil {
		return q.Scale.Min
	}
	return 0
}
