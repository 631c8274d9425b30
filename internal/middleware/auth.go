package middleware

import (
	"net/http"
	"strings"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	tokenKey  = "token"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and rejects
// tokens the holder has logged out of.
func JWTAuth(secret string, tokens infra.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token invalid or expired"))
			return
		}

		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Request.Context(), tokenStr)
			if err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token invalid or expired"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(tokenKey, tokenStr)
		c.Next()
	}
}

// RequireStaff rejects authenticated requests whose identity lacks the staff
// flag. All mutation endpoints on the manager surface sit behind it.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !claims.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("staff privilege required"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// GetToken returns the raw bearer token stored by JWTAuth.
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// ActorID parses the authenticated user id from the claims.
func ActorID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
