package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateToken("abc123", RankAdmin, "Ramesh Traders", "hardware")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "abc123", claims.SubjectID())
		assert.Equal(t, RankAdmin, claims.Rank)
		assert.Equal(t, "Ramesh Traders", claims.Name)
		assert.Equal(t, "hardware", claims.Category)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := Claims{
			Rank: RankUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "abc123",
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		claims := Claims{
			Rank: RankUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "abc123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		_, err = ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Unknown Rank Rejected", func(t *testing.T) {
		claims := Claims{
			Rank: Rank("superuser"),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "abc123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("abc123", RankUser, "", "")
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "cookie_token", ExtractToken(req))
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractToken(req))
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractToken(req))
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractToken(req))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		assert.Empty(t, ExtractToken(req))
	})
}

func TestSessionCookie(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		w := httptest.NewRecorder()
		SetSessionCookie(w, "tok")

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, CookieName, c.Name)
		assert.Equal(t, "tok", c.Value)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
		assert.Equal(t, int(TokenLifetime/time.Second), c.MaxAge)
	})

	t.Run("Clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		ClearSessionCookie(w)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}
