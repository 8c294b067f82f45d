package domain

// RecentJokesLimit is the number of jokes listed by the jokes loader.
const RecentJokesLimit = 5

// MinUsernameLength is the shortest accepted username.
const MinUsernameLength = 3

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// MinJokeNameLength is the shortest accepted joke name.
const MinJokeNameLength = 3

// MinJokeContentLength is the shortest accepted joke body.
const MinJokeContentLength = 10

// DefaultRedirect is where a successful login lands when no safe target was given.
const DefaultRedirect = "/jokes"
