package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remixjokes/src/infra/config"
)

func testJar() *Jar {
	return NewJar(config.SessionConfig{
		CookieName: "RJ_session",
		MaxAge:     720 * time.Hour,
		Secure:     true,
	})
}

func TestJar_Set(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	testJar().Set(c, "token-value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, "RJ_session", ck.Name)
	assert.Equal(t, "token-value", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, int((720 * time.Hour).Seconds()), ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestJar_Clear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	testJar().Clear(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestJar_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jar := testJar()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/jokes", nil)
	assert.Empty(t, jar.Read(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/jokes", nil)
	c.Request.AddCookie(&http.Cookie{Name: "RJ_session", Value: "abc"})
	assert.Equal(t, "abc", jar.Read(c))
}
