package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/neuronet/neuronet-backend/internal/model"
)

type AssessmentRepo struct{ DB *sql.DB }

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo { return &AssessmentRepo{DB: db} }

// Insert persists a scored submission as an immutable row and fills in
// the generated ID. CreatedAt is assigned here, not by the client.
func (r *AssessmentRepo) Insert(ctx context.Context, a *model.Assessment) error {
	a.CreatedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO assessments (user_id, type, responses, total_score, risk_level, created_at) VALUES (?,?,?,?,?,?)",
		a.UserID, a.Type, a.Responses, a.TotalScore, a.RiskLevel, a.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// ListByUser returns all of a user's past submissions, newest first.
// The raw responses stay internal; only the scored summary is read.
func (r *AssessmentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Assessment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,type,total_score,risk_level,created_at FROM assessments WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Assessment
	for rows.Next() {
		a := model.Assessment{UserID: userID}
		if err := rows.Scan(&a.ID, &a.Type, &a.TotalScore, &a.RiskLevel, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
