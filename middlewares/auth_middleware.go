package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

const principalKey = "principal"

// Auth is the identity gate for every protected route. It extracts the
// bearer token, verifies it against the token service, and attaches the
// recovered principal to the request context. Any failure aborts with 401
// before the handler runs. The claims snapshot is the principal; there is no
// database fallback here.
func Auth(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c, "not authorized, no token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := tokens.Verify(tokenString)
		if err != nil {
			abortUnauthenticated(c, "not authorized, token failed")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	ae := apperror.Unauthenticated(msg)
	c.AbortWithStatusJSON(ae.StatusCode(), gin.H{"error": ae.PublicMessage()})
}

// GetPrincipal returns the principal the Auth middleware attached. Handlers
// behind Auth may assume it is present.
func GetPrincipal(c *gin.Context) (utils.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return utils.Principal{}, false
	}
	p, ok := v.(utils.Principal)
	return p, ok
}
