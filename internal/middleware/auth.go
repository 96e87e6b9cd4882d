package middleware

import (
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida o token Bearer e rejeita tokens revogados por logout.
func AuthMiddleware(cfg *config.Config, tokenRepo *repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if tokenRepo != nil {
			revoked, err := tokenRepo.IsRevoked(c.Request.Context(), tokenString)
			if err == nil && revoked {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Next()
	}
}
