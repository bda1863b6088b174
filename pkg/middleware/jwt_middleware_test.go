package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/pkg/utils"
)

func newAuthRouter(issuer *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		_, hasAccount := c.Get("account_id")
		c.JSON(http.StatusOK, gin.H{
			"session_id":  c.GetString(ContextSessionID),
			"has_account": hasAccount,
		})
	})
	return r
}

func TestJWTAuthMiddleware_SetsOnlySession(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.CreateToken("account-1", "01JSESSION")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthRouter(issuer).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"session_id":"01JSESSION","has_account":false}`, w.Body.String())
}

func TestJWTAuthMiddleware_Rejects(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)

	for name, header := range map[string]string{
		"missing":    "",
		"not bearer": "Token abc",
		"garbage":    "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(issuer).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
