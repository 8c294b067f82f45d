package dto

import "remixjokes/src/core/domain"

// Login types accepted by the login form.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

// LoginForm is the POST /login form.
type LoginForm struct {
	LoginType  string `form:"loginType"`
	Username   string `form:"username"`
	Password   string `form:"password"`
	RedirectTo string `form:"redirectTo"`
}

// LoginFormFields are sent back to refill the login form. The password never is.
type LoginFormFields struct {
	LoginType string `json:"loginType"`
	Username  string `json:"username"`
}

// Fields returns the values safe to echo back.
func (f *LoginForm) Fields() LoginFormFields {
	return LoginFormFields{LoginType: f.LoginType, Username: f.Username}
}

// NewJokeForm is the POST /jokes/new form.
type NewJokeForm struct {
	Name    string `form:"name" json:"name"`
	Content string `form:"content" json:"content"`
}

// JokeActionForm is the POST /jokes/:id form; only _method=delete is understood.
type JokeActionForm struct {
	Method string `form:"_method"`
}

// LoginPageData is the GET /login loader data.
type LoginPageData struct {
	RedirectTo string `json:"redirectTo"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// JokesPageData is the GET /jokes loader data.
type JokesPageData struct {
	User          *UserResponse         `json:"user"`
	JokeListItems []domain.JokeListItem `json:"jokeListItems"`
}

// JokePageData is the GET /jokes/:id loader data.
type JokePageData struct {
	Joke    *domain.Joke `json:"joke"`
	IsOwner bool         `json:"isOwner"`
}

// RandomJokeData is the GET /jokes/random loader data.
type RandomJokeData struct {
	Joke *domain.Joke `json:"joke"`
}

// NewUserResponse returns nil for a nil user so loaders can render "user": null.
func NewUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Username: u.Username}
}
