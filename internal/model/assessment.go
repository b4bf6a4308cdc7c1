package model

import "time"

// Assessment is an immutable row in the `assessments` table. Rows
// are append-only: a submission is scored once, written once and
// never updated or deleted afterwards.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who submitted the assessment.
//  Type       – instrument name (PHQ-9 or GAD-7).
//  Responses  – raw responses as a JSON array (question_id/score pairs).
//  TotalScore – sum of all response scores.
//  RiskLevel  – low, moderate or high.
//  CreatedAt  – server-assigned submission timestamp.
type Assessment struct {
	ID         uint64    // assessments.id
	UserID     uint64    // assessments.user_id
	Type       string    // assessments.type
	Responses  string    // assessments.responses (JSON text)
	TotalScore int       // assessments.total_score
	RiskLevel  string    // assessments.risk_level
	CreatedAt  time.Time // assessments.created_at
}
