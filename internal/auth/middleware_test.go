package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(codec *Codec, cfg MiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(codec, cfg), func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, principal.ID)
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	codec := testCodec()
	router := protectedRouter(codec, MiddlewareConfig{})

	token, err := codec.Issue("principal-x", time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "principal-x", rec.Body.String())
}

func TestRequireAuth_Rejections(t *testing.T) {
	codec := testCodec()
	router := protectedRouter(codec, MiddlewareConfig{})

	expired, err := codec.Issue("principal-x", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	valid, err := codec.Issue("principal-x", time.Now())
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Token " + valid,
		"no scheme":        valid,
		"garbage token":    "Bearer not-a-token",
		"expired token":    "Bearer " + expired,
		"tampered token":   "Bearer " + valid + "x",
		"empty credential": "Bearer ",
	}

	for name, headerValue := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if headerValue != "" {
				req.Header.Set("Authorization", headerValue)
			}
			router.ServeHTTP(rec, req)

			// every rejection cause collapses to a bare 403
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestRequireAuth_CustomHeaderAndScheme(t *testing.T) {
	codec := testCodec()
	router := protectedRouter(codec, MiddlewareConfig{Header: "X-Auth", Scheme: "Token"})

	token, err := codec.Issue("principal-y", time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Auth", "Token "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the default header is no longer honored
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPrincipalFrom_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := PrincipalFrom(c)
	assert.False(t, ok)
}
