package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/neuronet/neuronet-backend/internal/model"
)

type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// ProfilePatch carries the optional fields of a partial profile
// update. A nil pointer (or nil slice) means "leave unchanged". Each
// field maps to exactly one whitelisted column; caller input never
// reaches an identifier position in the generated SQL.
type ProfilePatch struct {
	FullName  *string
	Age       *int
	Gender    *string
	Languages []string
	Interests []string
}

// HasUpdates reports whether at least one field is set.
func (p ProfilePatch) HasUpdates() bool {
	return p.FullName != nil || p.Age != nil || p.Gender != nil ||
		p.Languages != nil || p.Interests != nil
}

// Get fetches a user's profile row. sql.ErrNoRows maps to
// ErrProfileNotFound.
func (r *ProfileRepo) Get(ctx context.Context, userID uint64) (model.Profile, error) {
	var (
		p         model.Profile
		fullName  sql.NullString
		age       sql.NullInt64
		gender    sql.NullString
		languages sql.NullString
		interests sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,full_name,age,gender,languages,interests FROM user_profiles WHERE user_id=? LIMIT 1",
		userID).Scan(&p.UserID, &fullName, &age, &gender, &languages, &interests)
	if err == sql.ErrNoRows {
		return model.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return model.Profile{}, err
	}
	if fullName.Valid {
		p.FullName = &fullName.String
	}
	if age.Valid {
		n := int(age.Int64)
		p.Age = &n
	}
	if gender.Valid {
		p.Gender = &gender.String
	}
	if p.Languages, err = decodeStrings(languages); err != nil {
		return model.Profile{}, err
	}
	if p.Interests, err = decodeStrings(interests); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// Apply updates the columns named by the patch's set fields and
// touches updated_at. The SET clause is assembled only from the fixed
// column list below. Returns ErrProfileNotFound when the user has no
// profile row.
func (r *ProfileRepo) Apply(ctx context.Context, userID uint64, patch ProfilePatch) error {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM user_profiles WHERE user_id=? LIMIT 1", userID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	cols := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)
	if patch.FullName != nil {
		cols = append(cols, "full_name=?")
		args = append(args, *patch.FullName)
	}
	if patch.Age != nil {
		cols = append(cols, "age=?")
		args = append(args, *patch.Age)
	}
	if patch.Gender != nil {
		cols = append(cols, "gender=?")
		args = append(args, *patch.Gender)
	}
	if patch.Languages != nil {
		enc, err := json.Marshal(patch.Languages)
		if err != nil {
			return err
		}
		cols = append(cols, "languages=?")
		args = append(args, string(enc))
	}
	if patch.Interests != nil {
		enc, err := json.Marshal(patch.Interests)
		if err != nil {
			return err
		}
		cols = append(cols, "interests=?")
		args = append(args, string(enc))
	}
	if len(cols) == 0 {
		return nil
	}
	cols = append(cols, "updated_at=CURRENT_TIMESTAMP")
	args = append(args, userID)

	_, err = r.DB.ExecContext(ctx,
		"UPDATE user_profiles SET "+strings.Join(cols, ", ")+" WHERE user_id=?", args...)
	return err
}

// decodeStrings unmarshals a nullable JSON TEXT column into a string
// slice. NULL and empty values decode to nil.
func decodeStrings(col sql.NullString) ([]string, error) {
	if !col.Valid || col.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(col.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}
