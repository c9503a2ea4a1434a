// Package scoring is the pure scoring and severity-classification engine.
// Every function here is total given well-formed input and performs no I/O;
// the engine is safe for unrestricted concurrent use.
package scoring

import (
	"errors"
	"fmt"

	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

// ErrZeroMaxScore is returned when a classification would divide by a
// non-positive maximum score.
var ErrZeroMaxScore = errors.New("scoring: max score must be positive")

// Band maps score percentages up to and including UpperBound to a severity
// label. Bands are evaluated in ascending order, first match wins, so a
// percentage exactly on a boundary always classifies into the lower band.
type Band struct {
	UpperBound float64
	Label      model.SeverityLevel
}

// DefaultBands is the standard Oswestry Disability Index band table. The
// final entry covers everything up to 100%.
var DefaultBands = []Band{
	{UpperBound: 20, Label: model.SeverityMinimal},
	{UpperBound: 40, Label: model.SeverityModerate},
	{UpperBound: 60, Label: model.SeveritySevere},
	{UpperBound: 80, Label: model.SeverityCrippled},
	{UpperBound: 100, Label: model.SeverityBedBound},
}

// Score sums the derived scores of the given responses. Uniqueness per
// question id is the caller's contract; no deduplication happens here.
func Score(responses []model.ResponseRecord) int {
	total := 0
	for _, r := range responses {
		total += r.Score
	}
	return total
}

// MaxScore sums the maximum attainable score of every question. It is always
// derived from the catalog content so that catalog edits can never
// desynchronize it from reality.
func MaxScore(questions []model.QuestionDefinition) int {
	max := 0
	for _, q := range questions {
		max += q.MaxAnswerValue()
	}
	return max
}

// ScoreForAnswer maps an answer value to its score: the selected option's
// ordinal position for choice questions, the raw value for scale questions.
// The mapping is intentionally the identity; there is no separate scoring
// table, so option ordering in the catalog is the scoring contract.
func ScoreForAnswer(q model.QuestionDefinition, value int) (int, error) {
	if value < q.MinAnswerValue() || value > q.MaxAnswerValue() {
		return 0, fmt.Errorf("scoring: answer %d out of range [%d,%d] for question %q",
			value, q.MinAnswerValue(), q.MaxAnswerValue(), q.ID)
	}
	return value, nil
}

// Classify maps a total/max score pair to a severity level using the default
// band table.
func Classify(total, max int) (model.SeverityLevel, error) {
	return ClassifyWith(DefaultBands, total, max)
}

// ClassifyWith classifies against a caller-supplied band table. The table
// must be ordered by ascending upper bound; the last band's upper bound is
// treated as 100 regardless of its declared value, so the table partitions
// [0,100] exhaustively. Classification with max <= 0 fails closed with
// ErrZeroMaxScore rather than returning an undefined label.
func ClassifyWith(bands []Band, total, max int) (model.SeverityLevel, error) {
	if max <= 0 {
		return "", ErrZeroMaxScore
	}
	if len(bands) == 0 {
		return "", errors.New("scoring: empty band table")
	}

	percentage := 100 * float64(total) / float64(max)
	for _, b := range bands[:len(bands)-1] {
		if percentage <= b.UpperBound {
			return b.Label, nil
		}
	}
	return bands[len(bands)-1].Label, nil
}
