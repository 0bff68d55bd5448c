package middleware

import (
	"context"
	"errors"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// PrincipalResolver reloads the live record behind verified claims.
// account.Service implements it.
type PrincipalResolver interface {
	Resolve(ctx context.Context, claims *auth.Claims) (*auth.Principal, error)
}

var (
	errNoToken      = httpx.E(httpx.Authentication, "Access denied. Please login.")
	errTokenExpired = httpx.E(httpx.Authentication, "Token expired. Please login again.")
	errTokenInvalid = httpx.E(httpx.Authentication, "Invalid token. Please login again.")
	errNotAdmin     = httpx.E(httpx.Authorization, "Access denied. Only admins can perform this action.")
	errNotMaster    = httpx.E(httpx.Authorization, "Access denied. Only master admin can perform this action.")
	errNotLoggedIn  = httpx.E(httpx.Authentication, "Unauthorized. Please login first.")
)

func resolvePrincipal(c *gin.Context, accounts PrincipalResolver) (*auth.Principal, error) {
	token := auth.ExtractToken(c.Request)
	if token == "" {
		return nil, errNoToken
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, errTokenExpired
		}
		return nil, errTokenInvalid
	}

	return accounts.Resolve(c.Request.Context(), claims)
}

// Authenticate rejects the request unless a valid session resolves to a live
// principal. 401 distinguishes expired from invalid tokens; a token whose
// principal has since been deleted is a 404.
func Authenticate(accounts PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := resolvePrincipal(c, accounts)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// OptionalAuthenticate resolves a principal when a usable session is present
// and lets the request through as a guest otherwise.
func OptionalAuthenticate(accounts PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, err := resolvePrincipal(c, accounts); err == nil {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// RequireAdmin passes rank "admin" only. Master does not satisfy it: the
// master role manages taxonomy, not products.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			httpx.Fail(c, errNotLoggedIn)
			return
		}
		if principal.Rank != auth.RankAdmin {
			httpx.Fail(c, errNotAdmin)
			return
		}
		c.Next()
	}
}

func RequireMaster() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			httpx.Fail(c, errNotLoggedIn)
			return
		}
		if principal.Rank != auth.RankMaster {
			httpx.Fail(c, errNotMaster)
			return
		}
		c.Next()
	}
}

// RequireRank passes when the principal holds any of the given ranks.
func RequireRank(ranks ...auth.Rank) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			httpx.Fail(c, errNotLoggedIn)
			return
		}
		for _, r := range ranks {
			if principal.Rank == r {
				c.Next()
				return
			}
		}
		httpx.Fail(c, httpx.E(httpx.Authorization, "Access denied"))
	}
}

func PrincipalFromContext(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := v.(*auth.Principal)
	return principal
}
