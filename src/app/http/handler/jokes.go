package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"remixjokes/src/app/http/dto"
	"remixjokes/src/app/http/response"
	"remixjokes/src/app/middleware"
	"remixjokes/src/core/domain"
	"remixjokes/src/core/usecase"
	"remixjokes/src/infra/metrics"
)

const (
	msgJokeNotFound  = "What a joke! Not found."
	msgNoRandomJoke  = "No random joke found"
	msgUnknownMethod = "Unsupported _method"
	methodDelete     = "delete"
)

// JokeHandler serves the joke pages and their form actions.
type JokeHandler struct {
	jokes    *usecase.JokeService
	sessions *usecase.SessionService
	log      *slog.Logger
}

func NewJokeHandler(jokes *usecase.JokeService, sessions *usecase.SessionService, log *slog.Logger) *JokeHandler {
	return &JokeHandler{jokes: jokes, sessions: sessions, log: log}
}

// List GET /jokes
func (h *JokeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, _ := h.sessions.UserByID(ctx, middleware.GetUserID(c))

	items, err := h.jokes.Recent(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, dto.JokesPageData{
		User:          dto.NewUserResponse(user),
		JokeListItems: items,
	})
}

// Random GET /jokes/random
func (h *JokeHandler) Random(c *gin.Context) {
	joke, err := h.jokes.Random(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			response.NotFound(c, msgNoRandomJoke, middleware.GetRequestID(c))
			return
		}
		h.fail(c, err)
		return
	}
	response.OK(c, dto.RandomJokeData{Joke: joke})
}

// NewPage GET /jokes/new
func (h *JokeHandler) NewPage(c *gin.Context) {
	response.OK(c, gin.H{})
}

// Create POST /jokes/new
func (h *JokeHandler) Create(c *gin.Context) {
	var form dto.NewJokeForm
	if !bindForm(c, &form, "name", "content") {
		return
	}

	joke, err := h.jokes.Create(c.Request.Context(), middleware.GetUserID(c), form.Name, form.Content)
	if err != nil {
		var fe domain.FieldErrors
		if errors.As(err, &fe) {
			response.Invalid(c, response.ActionData{FieldErrors: fe, Fields: form})
			return
		}
		h.fail(c, err)
		return
	}

	metrics.RecordJoke("created")
	response.Redirect(c, "/jokes/"+joke.ID)
}

// Show GET /jokes/:jokeId
func (h *JokeHandler) Show(c *gin.Context) {
	joke, err := h.jokes.Get(c.Request.Context(), c.Param("jokeId"))
	if err != nil {
		if domain.IsNotFound(err) {
			response.NotFound(c, msgJokeNotFound, middleware.GetRequestID(c))
			return
		}
		h.fail(c, err)
		return
	}

	response.OK(c, dto.JokePageData{
		Joke:    joke,
		IsOwner: joke.OwnedBy(middleware.GetUserID(c)),
	})
}

// Action POST /jokes/:jokeId
// Only _method=delete is supported; it requires a session and ownership.
func (h *JokeHandler) Action(c *gin.Context) {
	var form dto.JokeActionForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil || form.Method != methodDelete {
		response.BadRequest(c, msgUnknownMethod, middleware.GetRequestID(c))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Redirect(c, middleware.LoginRedirect(c.Request.URL.Path))
		return
	}

	if err := h.jokes.Delete(c.Request.Context(), userID, c.Param("jokeId")); err != nil {
		if domain.IsForbidden(err) {
			metrics.RecordJoke("delete_refused")
		}
		h.fail(c, err)
		return
	}

	metrics.RecordJoke("deleted")
	response.Redirect(c, "/jokes")
}

func (h *JokeHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.FromDomainError(c, err, middleware.GetRequestID(c))
}
