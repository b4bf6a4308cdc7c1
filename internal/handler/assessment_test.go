package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/assessment"
	"github.com/neuronet/neuronet-backend/internal/model"
	"github.com/neuronet/neuronet-backend/internal/queue"
)

type stubAssessments struct {
	rows   []model.Assessment
	nextID uint64
}

func (s *stubAssessments) Insert(ctx context.Context, a *model.Assessment) error {
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Now().UTC()
	s.rows = append([]model.Assessment{*a}, s.rows...) // newest first
	return nil
}

func (s *stubAssessments) ListByUser(ctx context.Context, userID uint64) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range s.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func assessmentCtx(t *testing.T, method, path, body string, identity *model.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set("identity", *identity)
	}
	return c, rec
}

func TestTypesCatalog(t *testing.T) {
	h := NewAssessmentHandler(&stubAssessments{}, nil)
	c, rec := assessmentCtx(t, http.MethodGet, "/assessments/types", "", nil)
	if err := h.Types(c); err != nil {
		t.Fatalf("Types: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var types []assessment.TypeInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(types) != 2 || types[0].Type != assessment.TypePHQ9 || types[1].Type != assessment.TypeGAD7 {
		t.Fatalf("unexpected catalog: %+v", types)
	}
}

func TestQuestionsKnownAndUnknown(t *testing.T) {
	h := NewAssessmentHandler(&stubAssessments{}, nil)

	c, rec := assessmentCtx(t, http.MethodGet, "/assessments/PHQ-9/questions", "", nil)
	c.SetParamNames("type")
	c.SetParamValues("PHQ-9")
	if err := h.Questions(c); err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var qs []assessment.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &qs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(qs) != 9 {
		t.Fatalf("PHQ-9 should have 9 questions, got %d", len(qs))
	}

	c, rec = assessmentCtx(t, http.MethodGet, "/assessments/XYZ/questions", "", nil)
	c.SetParamNames("type")
	c.SetParamValues("XYZ")
	if err := h.Questions(c); err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown type should 404, got %d", rec.Code)
	}
}

func TestSubmitScoresPersistsAndPublishes(t *testing.T) {
	store := &stubAssessments{}
	var published []queue.AssessmentSubmittedEvent
	h := NewAssessmentHandler(store, func(ctx context.Context, ev queue.AssessmentSubmittedEvent) error {
		published = append(published, ev)
		return nil
	})

	var sb strings.Builder
	sb.WriteString(`{"type":"PHQ-9","responses":[`)
	for i := 1; i <= 9; i++ {
		if i > 1 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"question_id":` + string(rune('0'+i)) + `,"score":3}`)
	}
	sb.WriteString(`]}`)

	identity := &model.User{ID: 11, Email: "a@x.com", Role: model.RoleUser, IsActive: true}
	c, rec := assessmentCtx(t, http.MethodPost, "/assessments/submit", sb.String(), identity)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp submitResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalScore != 27 || resp.RiskLevel != assessment.RiskHigh {
		t.Fatalf("all-3 PHQ-9 should score (27, high), got %+v", resp)
	}
	if len(store.rows) != 1 || store.rows[0].UserID != 11 || store.rows[0].TotalScore != 27 {
		t.Fatalf("submission not persisted: %+v", store.rows)
	}
	if len(published) != 1 || published[0].RiskLevel != assessment.RiskHigh || published[0].AssessmentID == 0 {
		t.Fatalf("event not published: %+v", published)
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	store := &stubAssessments{}
	h := NewAssessmentHandler(store, nil)
	identity := &model.User{ID: 11, Role: model.RoleUser, IsActive: true}

	cases := []struct {
		name string
		body string
	}{
		{"wrong count", `{"type":"PHQ-9","responses":[{"question_id":1,"score":3}]}`},
		{"unknown type", `{"type":"PCL-5","responses":[]}`},
		{"duplicate id", `{"type":"GAD-7","responses":[
			{"question_id":1,"score":1},{"question_id":1,"score":1},{"question_id":3,"score":1},
			{"question_id":4,"score":1},{"question_id":5,"score":1},{"question_id":6,"score":1},
			{"question_id":7,"score":1}]}`},
		{"score out of range", `{"type":"GAD-7","responses":[
			{"question_id":1,"score":4},{"question_id":2,"score":1},{"question_id":3,"score":1},
			{"question_id":4,"score":1},{"question_id":5,"score":1},{"question_id":6,"score":1},
			{"question_id":7,"score":1}]}`},
	}
	for _, tc := range cases {
		c, rec := assessmentCtx(t, http.MethodPost, "/assessments/submit", tc.body, identity)
		if err := h.Submit(c); err != nil {
			t.Fatalf("%s: Submit returned error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
		}
	}
	if len(store.rows) != 0 {
		t.Fatalf("invalid submissions must not be persisted: %+v", store.rows)
	}
}

func TestSubmitGAD7AllOnes(t *testing.T) {
	h := NewAssessmentHandler(&stubAssessments{}, nil)
	identity := &model.User{ID: 3, Role: model.RoleBuddy, IsActive: true}
	body := `{"type":"GAD-7","responses":[
		{"question_id":1,"score":1},{"question_id":2,"score":1},{"question_id":3,"score":1},
		{"question_id":4,"score":1},{"question_id":5,"score":1},{"question_id":6,"score":1},
		{"question_id":7,"score":1}]}`
	c, rec := assessmentCtx(t, http.MethodPost, "/assessments/submit", body, identity)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	var resp submitResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalScore != 7 || resp.RiskLevel != assessment.RiskLow {
		t.Fatalf("all-1 GAD-7 should score (7, low), got %+v", resp)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := &stubAssessments{}
	h := NewAssessmentHandler(store, nil)
	identity := &model.User{ID: 9, Role: model.RoleUser, IsActive: true}

	for _, kind := range []string{"PHQ-9", "GAD-7"} {
		store.Insert(context.Background(), &model.Assessment{UserID: 9, Type: kind, TotalScore: 5, RiskLevel: "low"})
	}
	store.Insert(context.Background(), &model.Assessment{UserID: 4, Type: "PHQ-9", TotalScore: 20, RiskLevel: "high"})

	c, rec := assessmentCtx(t, http.MethodGet, "/assessments/history", "", identity)
	if err := h.History(c); err != nil {
		t.Fatalf("History: %v", err)
	}
	var items []historyItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected only the caller's 2 rows, got %d", len(items))
	}
	if items[0].Type != "GAD-7" || items[1].Type != "PHQ-9" {
		t.Fatalf("history not newest-first: %+v", items)
	}
}
