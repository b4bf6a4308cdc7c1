// Package queue defines message payloads exchanged over the message broker.
package queue

// AssessmentSubmittedEvent is published after a questionnaire
// submission has been scored and persisted. It carries enough for
// downstream consumers (care-team alerting, analytics) to act without
// querying the primary database. Raw question responses are left out
// on purpose.
type AssessmentSubmittedEvent struct {
	AssessmentID uint64 `json:"assessment_id"`
	UserID       uint64 `json:"user_id"`
	Type         string `json:"type"`
	TotalScore   int    `json:"total_score"`
	RiskLevel    string `json:"risk_level"`
	SubmittedAt  string `json:"submitted_at"`
}
