package domain

import "time"

// User is a registered jokester.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Joke is a user-submitted joke. JokesterID is the owning user.
type Joke struct {
	ID         string    `json:"id"`
	JokesterID string    `json:"jokesterId"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the joke.
func (j *Joke) OwnedBy(userID string) bool {
	return userID != "" && j.JokesterID == userID
}

// JokeListItem is the id/name projection shown in the jokes sidebar.
type JokeListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionClaims is the decoded content of a session token.
type SessionClaims struct {
	// ID uniquely identifies the token so it can be revoked.
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Session is a freshly issued session token.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
