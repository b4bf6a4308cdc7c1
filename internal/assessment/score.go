package assessment

import (
	"errors"
	"fmt"
)

// Risk tiers derived from a total score. The thresholds are identical
// for PHQ-9 and GAD-7.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// ErrInvalidSubmission marks any validation failure of a submission.
// Handlers map it to a 400 response; the wrapped message names the
// specific rule that was broken.
var ErrInvalidSubmission = errors.New("invalid submission")

// Response is a single answered question in a submission.
type Response struct {
	QuestionID int `json:"question_id"`
	Score      int `json:"score"`
}

// Validate checks a submission against the instrument's catalog:
// exactly one response per question ID in [1, question count], every
// score in [0, 3], no duplicates. An unknown instrument type is also
// a validation failure.
func Validate(kind string, responses []Response) error {
	expected, ok := QuestionCount(kind)
	if !ok {
		return fmt.Errorf("%w: unknown assessment type %q", ErrInvalidSubmission, kind)
	}
	if len(responses) != expected {
		return fmt.Errorf("%w: %s requires exactly %d responses, got %d",
			ErrInvalidSubmission, kind, expected, len(responses))
	}
	seen := make(map[int]bool, expected)
	for _, r := range responses {
		if r.QuestionID < 1 || r.QuestionID > expected {
			return fmt.Errorf("%w: invalid question_id %d", ErrInvalidSubmission, r.QuestionID)
		}
		if seen[r.QuestionID] {
			return fmt.Errorf("%w: duplicate question_id %d", ErrInvalidSubmission, r.QuestionID)
		}
		seen[r.QuestionID] = true
		if r.Score < 0 || r.Score > 3 {
			return fmt.Errorf("%w: invalid score %d, must be 0-3", ErrInvalidSubmission, r.Score)
		}
	}
	return nil
}

// Score validates a submission and computes its total score and risk
// tier. Total ranges are 0-27 for PHQ-9 and 0-21 for GAD-7; the tier
// mapping is total <= 9 low, 10-14 moderate, >= 15 high. Deterministic
// integer arithmetic only.
func Score(kind string, responses []Response) (total int, risk string, err error) {
	if err := Validate(kind, responses); err != nil {
		return 0, "", err
	}
	for _, r := range responses {
		total += r.Score
	}
	return total, riskLevel(total), nil
}

func riskLevel(total int) string {
	switch {
	case total <= 9:
		return RiskLow
	case total <= 14:
		return RiskModerate
	default:
		return RiskHigh
	}
}
