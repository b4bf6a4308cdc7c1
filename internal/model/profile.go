package model

// Profile represents a row in the `user_profiles` table. One empty
// row is created per user at registration time; every field other
// than the owner reference is optional until the user fills it in.
// Languages and Interests are stored as JSON arrays in TEXT columns.
//
// Fields:
//  UserID    – owning user (also the primary key).
//  FullName  – display name (nullable).
//  Age       – age in years, 1–120 (nullable).
//  Gender    – free-form gender string (nullable).
//  Languages – spoken languages (nullable JSON array).
//  Interests – interests used for matching (nullable JSON array).
type Profile struct {
	UserID    uint64   // user_profiles.user_id
	FullName  *string  // user_profiles.full_name (nullable)
	Age       *int     // user_profiles.age (nullable)
	Gender    *string  // user_profiles.gender (nullable)
	Languages []string // user_profiles.languages (JSON text)
	Interests []string // user_profiles.interests (JSON text)
}
