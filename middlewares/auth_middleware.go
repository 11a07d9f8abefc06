package middlewares

import (
	"net/http"
	"strings"

	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the acting user from a Bearer token and stores
// the id in the gin context under "userID". Blacklisted (logged-out)
// tokens are rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			utils.ErrorStat(ctx, http.StatusUnauthorized, "Authorization error")
			ctx.Abort()
			return
		}

		if services.IsTokenBlacklisted(token) {
			utils.ErrorStat(ctx, http.StatusUnauthorized, "invalid token")
			ctx.Abort()
			return
		}

		userID, err := utils.ParseJWT(token)
		if err != nil {
			utils.ErrorStat(ctx, http.StatusUnauthorized, "invalid token")
			ctx.Abort()
			return
		}

		ctx.Set("userID", userID)
		ctx.Set("token", token)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
