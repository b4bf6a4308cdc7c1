package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/middleware"
	"github.com/neuronet/neuronet-backend/internal/model"
	"github.com/neuronet/neuronet-backend/internal/repository"
)

// ProfileStore is the slice of the profile repository the handlers use.
type ProfileStore interface {
	Get(ctx context.Context, userID uint64) (model.Profile, error)
	Apply(ctx context.Context, userID uint64, patch repository.ProfilePatch) error
}

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	Profiles ProfileStore
}

func NewProfileHandler(p ProfileStore) *ProfileHandler { return &ProfileHandler{Profiles: p} }

// ----- DTOs -----

type profilePart struct {
	FullName  *string  `json:"full_name"`
	Age       *int     `json:"age"`
	Gender    *string  `json:"gender"`
	Languages []string `json:"languages"`
	Interests []string `json:"interests"`
}

type profileResp struct {
	ID      uint64      `json:"id"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Profile profilePart `json:"profile"`
}

// updateProfileReq uses pointer fields so "absent" and "set to a
// value" stay distinguishable. Email and role are not updatable.
type updateProfileReq struct {
	FullName  *string  `json:"full_name"`
	Age       *int     `json:"age"`
	Gender    *string  `json:"gender"`
	Languages []string `json:"languages"`
	Interests []string `json:"interests"`
}

func profileResponse(u model.User, p model.Profile) profileResp {
	langs := p.Languages
	if langs == nil {
		langs = []string{}
	}
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return profileResp{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Profile: profilePart{
			FullName:  p.FullName,
			Age:       p.Age,
			Gender:    p.Gender,
			Languages: langs,
			Interests: interests,
		},
	}
}

// Get returns the authenticated user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.Get(ctx, u.ID)
	if err != nil {
		if err == repository.ErrProfileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, profileResponse(u, p))
}

// Update applies a partial update to the authenticated user's profile.
// At least one field must be provided; only whitelisted columns ever
// change.
func (h *ProfileHandler) Update(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	patch, errMsg := buildPatch(req)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}
	if !patch.HasUpdates() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields provided for update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.Apply(ctx, u.ID, patch); err != nil {
		if err == repository.ErrProfileNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	p, err := h.Profiles.Get(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, profileResponse(u, p))
}

// buildPatch validates the request fields and converts them into a
// repository patch. The returned message is empty when everything
// validates.
func buildPatch(req updateProfileReq) (repository.ProfilePatch, string) {
	var patch repository.ProfilePatch

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" || len(name) > 100 {
			return patch, "full_name must be 1-100 characters"
		}
		patch.FullName = &name
	}
	if req.Age != nil {
		if *req.Age < 1 || *req.Age > 120 {
			return patch, "age must be between 1 and 120"
		}
		patch.Age = req.Age
	}
	if req.Gender != nil {
		g := strings.TrimSpace(*req.Gender)
		if g == "" || len(g) > 20 {
			return patch, "gender must be 1-20 characters"
		}
		patch.Gender = &g
	}
	if req.Languages != nil {
		cleaned, ok := cleanStrings(req.Languages)
		if !ok {
			return patch, "languages must be a non-empty list of non-empty strings"
		}
		patch.Languages = cleaned
	}
	if req.Interests != nil {
		cleaned, ok := cleanStrings(req.Interests)
		if !ok {
			return patch, "interests must be a non-empty list of non-empty strings"
		}
		patch.Interests = cleaned
	}
	return patch, ""
}

func cleanStrings(in []string) ([]string, bool) {
	if len(in) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
