package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"remixjokes/src/app/http/cookie"
	"remixjokes/src/app/http/dto"
	"remixjokes/src/app/http/response"
	"remixjokes/src/app/middleware"
	"remixjokes/src/core/domain"
	"remixjokes/src/core/usecase"
	"remixjokes/src/infra/logger"
	"remixjokes/src/infra/metrics"
)

const (
	msgInvalidLogin   = "Invalid username or password."
	msgRegisterFailed = "Something went wrong trying to create a new user."
	msgBadLoginType   = "Login type invalid"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	auth     *usecase.AuthService
	sessions *usecase.SessionService
	jar      *cookie.Jar
	log      *slog.Logger
}

func NewAuthHandler(auth *usecase.AuthService, sessions *usecase.SessionService, jar *cookie.Jar, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, jar: jar, log: log}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	response.OK(c, dto.LoginPageData{
		RedirectTo: domain.SafeRedirect(c.Query("redirectTo")),
	})
}

// Login POST /login
// Handles both loginType=login and loginType=register.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if !bindForm(c, &form, "loginType", "username", "password", "redirectTo") {
		return
	}
	fields := form.Fields()

	if err := domain.ValidateCredentials(form.Username, form.Password); err != nil {
		fe, _ := err.(domain.FieldErrors)
		response.Invalid(c, response.ActionData{FieldErrors: fe, Fields: fields})
		return
	}

	var (
		user   *domain.User
		err    error
		action string
	)
	switch form.LoginType {
	case dto.LoginTypeLogin:
		action = "login"
		user, err = h.auth.Login(c.Request.Context(), form.Username, form.Password)
		if err != nil {
			metrics.RecordAuth(action, false)
			if domain.IsUnauthorized(err) {
				response.Invalid(c, response.ActionData{FormError: msgInvalidLogin, Fields: fields})
				return
			}
			logger.WithRequestID(h.log, middleware.GetRequestID(c)).Error("login failed", "error", err)
			_ = c.Error(err)
			response.InternalError(c, middleware.GetRequestID(c))
			return
		}
	case dto.LoginTypeRegister:
		action = "register"
		user, err = h.auth.Register(c.Request.Context(), form.Username, form.Password)
		if err != nil {
			metrics.RecordAuth(action, false)
			if domain.IsConflict(err) {
				response.Invalid(c, response.ActionData{FormError: domain.Message(err), Fields: fields})
				return
			}
			logger.WithRequestID(h.log, middleware.GetRequestID(c)).Error("registration failed", "error", err)
			_ = c.Error(err)
			response.Invalid(c, response.ActionData{FormError: msgRegisterFailed, Fields: fields})
			return
		}
	default:
		response.Invalid(c, response.ActionData{FormError: msgBadLoginType, Fields: fields})
		return
	}

	metrics.RecordAuth(action, true)
	h.startSession(c, user.ID, form.RedirectTo)
}

func (h *AuthHandler) startSession(c *gin.Context, userID, redirectTo string) {
	sess, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c, middleware.GetRequestID(c))
		return
	}
	h.jar.Set(c, sess.Token)
	response.Redirect(c, domain.SafeRedirect(redirectTo))
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Request.Context(), middleware.GetSessionToken(c)); err != nil {
		// The cookie is cleared regardless; the token only outlives it server-side.
		logger.WithRequestID(h.log, middleware.GetRequestID(c)).Warn("session revocation failed", "error", err)
	}
	h.jar.Clear(c)
	metrics.RecordAuth("logout", true)
	response.Redirect(c, "/login")
}

// LogoutRedirect GET /logout
func (h *AuthHandler) LogoutRedirect(c *gin.Context) {
	response.Redirect(c, "/")
}
