// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core entity in the system: identity, nutrient goals and progression state.
type User struct {
	ID           string         // Opaque identifier generated at registration. Immutable primary key.
	Username     string         // Unique (case-insensitive) login name.
	Credential   string         // Stored secret. Plaintext or bcrypt hash depending on auth.passwordMode.
	Approved     bool           // Unapproved users cannot authenticate.
	Goals        NutrientValues // Per-nutrient daily targets. Zero means "use default".
	RankPoints   int            // Gamified points counter; drives the tier.
	Tier         string         // Tier name last written alongside the points.
	Streak       int            // Consecutive days with at least one logged meal.
	LastLogDate  string         // Date bucket of the most recent logged meal.
	Demographics Demographics   // Optional profile data collected at registration.
}

// Demographics holds optional profile data kept on the user row.
type Demographics struct {
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	WeightKg      float64 `json:"weight_kg,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
}

// Session is the per-interaction context handed explicitly to every use case.
// It carries the caller's copy of the user row so partial updates can be
// mirrored without a re-read.
type Session struct {
	User *User
	View string
}

// NewSession creates a session for an authenticated user.
func NewSession(user *User) *Session {
	return &Session{User: user}
}

// UserID returns the identifier of the session's user, or "" for anonymous sessions.
func (s *Session) UserID() string {
	if s == nil || s.User == nil {
		return ""
	}

	return s.User.ID
}
