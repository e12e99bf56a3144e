package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	return token
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")

	r := gin.New()
	r.Use(RequireAuth(secret))
	r.GET("/whoami", func(c *gin.Context) {
		id := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID, "role": id.Role})
	})

	token := signToken(t, secret, jwt.MapClaims{
		"user_id": "se-1",
		"role":    "se",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")

	r := gin.New()
	r.Use(RequireAuth(secret))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"wrong secret": "Bearer " + signToken(t, []byte("other-secret"), jwt.MapClaims{
			"user_id": "se-1", "role": "se", "exp": time.Now().Add(time.Hour).Unix(),
		}),
		"expired": "Bearer " + signToken(t, secret, jwt.MapClaims{
			"user_id": "se-1", "role": "se", "exp": time.Now().Add(-time.Hour).Unix(),
		}),
		"no identity claims": "Bearer " + signToken(t, secret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}),
	}

	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, w.Code)
		}
	}
}
