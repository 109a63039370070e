package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/i18n"
	"github.com/glotta/translate-service/internal/logger"
	"github.com/glotta/translate-service/internal/service"
)

// ErrorHandler returns a middleware that turns errors attached to the
// gin context into JSON error responses. Service errors carry their
// own status and code; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)
		locale := i18n.GetLocale(c)

		logger.Logger().Error().
			Str("request_id", requestID).
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		if appErr, ok := service.AsAppError(err); ok {
			c.JSON(appErr.HTTPStatus(),
				dto.NewError(appErr.Code(), appErr.Message).WithRequestID(requestID))
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
		c.JSON(http.StatusInternalServerError,
			dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
