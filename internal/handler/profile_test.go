package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/neuronet/neuronet-backend/internal/model"
	"github.com/neuronet/neuronet-backend/internal/repository"
)

type stubProfiles struct {
	profiles map[uint64]model.Profile
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{profiles: map[uint64]model.Profile{}}
}

func (s *stubProfiles) Get(ctx context.Context, userID uint64) (model.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return model.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubProfiles) Apply(ctx context.Context, userID uint64, patch repository.ProfilePatch) error {
	p, ok := s.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if patch.FullName != nil {
		p.FullName = patch.FullName
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.Gender != nil {
		p.Gender = patch.Gender
	}
	if patch.Languages != nil {
		p.Languages = patch.Languages
	}
	if patch.Interests != nil {
		p.Interests = patch.Interests
	}
	s.profiles[userID] = p
	return nil
}

func TestProfileGet(t *testing.T) {
	store := newStubProfiles()
	name := "Ada"
	store.profiles[5] = model.Profile{UserID: 5, FullName: &name, Languages: []string{"en", "fr"}}
	h := NewProfileHandler(store)
	identity := &model.User{ID: 5, Email: "a@x.com", Role: model.RoleUser, IsActive: true}

	c, rec := assessmentCtx(t, http.MethodGet, "/profile", "", identity)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp profileResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 5 || resp.Email != "a@x.com" || resp.Profile.FullName == nil || *resp.Profile.FullName != "Ada" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Profile.Languages) != 2 {
		t.Fatalf("languages lost: %+v", resp.Profile)
	}
	// Unset list fields serialize as empty arrays, not null.
	if resp.Profile.Interests == nil {
		t.Fatalf("interests should decode to an empty slice")
	}
}

func TestProfileGetMissing(t *testing.T) {
	h := NewProfileHandler(newStubProfiles())
	identity := &model.User{ID: 99, Role: model.RoleUser, IsActive: true}

	c, rec := assessmentCtx(t, http.MethodGet, "/profile", "", identity)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing profile should 404, got %d", rec.Code)
	}
}

func TestProfileUpdate(t *testing.T) {
	store := newStubProfiles()
	store.profiles[5] = model.Profile{UserID: 5}
	h := NewProfileHandler(store)
	identity := &model.User{ID: 5, Email: "a@x.com", Role: model.RoleUser, IsActive: true}

	body := `{"full_name":"  Ada Lovelace  ","age":30,"languages":["en","de"]}`
	c, rec := assessmentCtx(t, http.MethodPut, "/profile", body, identity)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	p := store.profiles[5]
	if p.FullName == nil || *p.FullName != "Ada Lovelace" {
		t.Fatalf("full_name not trimmed/applied: %+v", p)
	}
	if p.Age == nil || *p.Age != 30 {
		t.Fatalf("age not applied: %+v", p)
	}
	if len(p.Languages) != 2 {
		t.Fatalf("languages not applied: %+v", p)
	}
	if p.Gender != nil {
		t.Fatalf("gender must stay unset when absent from the patch")
	}
}

func TestProfileUpdateNoFields(t *testing.T) {
	store := newStubProfiles()
	store.profiles[5] = model.Profile{UserID: 5}
	h := NewProfileHandler(store)
	identity := &model.User{ID: 5, Role: model.RoleUser, IsActive: true}

	c, rec := assessmentCtx(t, http.MethodPut, "/profile", `{}`, identity)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty patch should 400, got %d", rec.Code)
	}
}

func TestProfileUpdateValidation(t *testing.T) {
	store := newStubProfiles()
	store.profiles[5] = model.Profile{UserID: 5}
	h := NewProfileHandler(store)
	identity := &model.User{ID: 5, Role: model.RoleUser, IsActive: true}

	cases := []struct {
		name string
		body string
	}{
		{"age too low", `{"age":0}`},
		{"age too high", `{"age":121}`},
		{"blank name", `{"full_name":"   "}`},
		{"empty languages", `{"languages":[]}`},
		{"blank language item", `{"languages":["en",""]}`},
		{"empty interests", `{"interests":[]}`},
	}
	for _, tc := range cases {
		c, rec := assessmentCtx(t, http.MethodPut, "/profile", tc.body, identity)
		if err := h.Update(c); err != nil {
			t.Fatalf("%s: Update returned error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
		}
	}
}

func TestProfileUpdateMissingRow(t *testing.T) {
	h := NewProfileHandler(newStubProfiles())
	identity := &model.User{ID: 42, Role: model.RoleUser, IsActive: true}

	c, rec := assessmentCtx(t, http.MethodPut, "/profile", `{"age":30}`, identity)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing profile row should 404, got %d", rec.Code)
	}
}
