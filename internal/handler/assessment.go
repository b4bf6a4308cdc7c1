package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/assessment"
	"github.com/neuronet/neuronet-backend/internal/middleware"
	"github.com/neuronet/neuronet-backend/internal/model"
	"github.com/neuronet/neuronet-backend/internal/queue"
)

// AssessmentStore is the slice of the assessment repository the
// handlers use.
type AssessmentStore interface {
	Insert(ctx context.Context, a *model.Assessment) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Assessment, error)
}

// EventPublisher publishes a submission event to the broker.
// Best-effort: the submit handler logs failures and moves on.
type EventPublisher func(ctx context.Context, ev queue.AssessmentSubmittedEvent) error

// AssessmentHandler serves the questionnaire catalog, submissions and
// history. Scoring itself is pure and lives in internal/assessment.
type AssessmentHandler struct {
	Store   AssessmentStore
	Publish EventPublisher
}

func NewAssessmentHandler(store AssessmentStore, publish EventPublisher) *AssessmentHandler {
	return &AssessmentHandler{Store: store, Publish: publish}
}

// ----- DTOs -----

type submitReq struct {
	Type      string                `json:"type"`
	Responses []assessment.Response `json:"responses"`
}
type submitResp struct {
	TotalScore int    `json:"total_score"`
	RiskLevel  string `json:"risk_level"`
}
type historyItem struct {
	ID         uint64    `json:"id"`
	Type       string    `json:"type"`
	TotalScore int       `json:"total_score"`
	RiskLevel  string    `json:"risk_level"`
	CreatedAt  time.Time `json:"created_at"`
}

// Types lists the available questionnaire instruments.
func (h *AssessmentHandler) Types(c echo.Context) error {
	return c.JSON(http.StatusOK, assessment.Types())
}

// Questions returns the ordered question list for one instrument.
func (h *AssessmentHandler) Questions(c echo.Context) error {
	kind := c.Param("type")
	qs, ok := assessment.Questions(kind)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "assessment type not found"})
	}
	return c.JSON(http.StatusOK, qs)
}

// Submit validates and scores a submission, persists it as an
// immutable row and publishes an event for downstream consumers.
func (h *AssessmentHandler) Submit(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	total, risk, err := assessment.Score(req.Type, req.Responses)
	if err != nil {
		if errors.Is(err, assessment.ErrInvalidSubmission) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "scoring failed"})
	}

	raw, err := json.Marshal(req.Responses)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode responses failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row := model.Assessment{
		UserID:     u.ID,
		Type:       req.Type,
		Responses:  string(raw),
		TotalScore: total,
		RiskLevel:  risk,
	}
	if err := h.Store.Insert(ctx, &row); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save assessment failed"})
	}

	if h.Publish != nil {
		// Broker trouble never fails the request; the row is already
		// persisted and the publisher logs its own errors.
		_ = h.Publish(ctx, queue.AssessmentSubmittedEvent{
			AssessmentID: row.ID,
			UserID:       row.UserID,
			Type:         row.Type,
			TotalScore:   row.TotalScore,
			RiskLevel:    row.RiskLevel,
			SubmittedAt:  row.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, submitResp{TotalScore: total, RiskLevel: risk})
}

// History returns the caller's past submissions, newest first.
func (h *AssessmentHandler) History(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Store.ListByUser(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]historyItem, 0, len(rows))
	for _, a := range rows {
		out = append(out, historyItem{
			ID:         a.ID,
			Type:       a.Type,
			TotalScore: a.TotalScore,
			RiskLevel:  a.RiskLevel,
			CreatedAt:  a.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
