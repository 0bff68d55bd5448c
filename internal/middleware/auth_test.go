package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubResolver maps claims straight to a principal without a database.
type stubResolver struct {
	err error
}

func (s *stubResolver) Resolve(_ context.Context, claims *auth.Claims) (*auth.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Principal{
		ID:   claims.SubjectID(),
		Name: claims.Name,
		Rank: claims.Rank,
	}, nil
}

func newAuthRouter(t *testing.T, resolver PrincipalResolver, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "rank": principal.Rank})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("No Token", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{})

		w := doRequest(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Please login")
	})

	t.Run("Garbage Token", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{})

		w := doRequest(r, "not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("Valid Token", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{})

		token, err := auth.GenerateToken("user-1", auth.RankUser, "Anuj", "")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("Bearer Header Works Too", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{})

		token, err := auth.GenerateToken("user-1", auth.RankUser, "Anuj", "")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/role", OptionalAuthenticate(&stubResolver{}), func(c *gin.Context) {
		if principal := PrincipalFromContext(c); principal != nil {
			c.JSON(http.StatusOK, gin.H{"rank": principal.Rank})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rank": "guest"})
	})

	t.Run("Guest Passes Through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/role", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "guest")
	})

	t.Run("Session Resolves", func(t *testing.T) {
		token, err := auth.GenerateToken("user-1", auth.RankUser, "Anuj", "")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/role", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Admin Passes", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{}, RequireAdmin())

		token, err := auth.GenerateToken("admin-1", auth.RankAdmin, "Sharma", "hardware")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("User Rejected", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{}, RequireAdmin())

		token, err := auth.GenerateToken("user-1", auth.RankUser, "Anuj", "")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Master Does Not Satisfy Admin", func(t *testing.T) {
		r := newAuthRouter(t, &stubResolver{}, RequireAdmin())

		token, err := auth.GenerateToken("master", auth.RankMaster, "", "")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireRank(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := newAuthRouter(t, &stubResolver{}, RequireRank(auth.RankMaster, auth.RankAdmin))

	t.Run("Master Passes", func(t *testing.T) {
		token, err := auth.GenerateToken("master", auth.RankMaster, "", "")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin Passes", func(t *testing.T) {
		token, err := auth.GenerateToken("admin-1", auth.RankAdmin, "Sharma", "hardware")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("User Rejected", func(t *testing.T) {
		token, err := auth.GenerateToken("user-1", auth.RankUser, "Anuj", "")
		assert.NoError(t, err)

		w := doRequest(r, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
