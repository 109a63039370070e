package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/i18n"
	"github.com/glotta/translate-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics and returns
// a 500 error, logging the panic with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				logger.Logger().Error().
					Str("request_id", requestID).
					Interface("panic", err).
					Msg("PANIC recovered")

				locale := i18n.GetLocale(c)
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
