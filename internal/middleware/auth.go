// Package middleware provides JWT authentication middleware.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/i18n"
)

// errInvalidClaims is returned when a token verifies but carries no
// usable identity.
var errInvalidClaims = errors.New("token carries no user identity")

// JWTAuth returns a middleware that validates Bearer tokens signed
// with the given HMAC secret and stores the caller's user ID in the
// context. When required is false, requests without an Authorization
// header pass through anonymously; a present but invalid token is
// rejected either way.
func JWTAuth(secret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				unauthorized(c, i18n.ErrKeyTokenRequired)
				return
			}
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		userID, err := parseUserID(tokenString, secret)
		if err != nil {
			unauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// parseUserID verifies the token and extracts the user ID from the
// user_id claim, falling back to the standard sub claim.
func parseUserID(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method: " + t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errInvalidClaims
	}

	if id, ok := claims["user_id"].(string); ok && id != "" {
		return id, nil
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, nil
	}
	return "", errInvalidClaims
}

func unauthorized(c *gin.Context, messageKey string) {
	locale := i18n.GetLocale(c)
	requestID := GetRequestID(c)
	message := i18n.GetTranslator().Translate(messageKey, locale)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID))
}
