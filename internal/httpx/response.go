package httpx

import (
	"os"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fail renders the {success:false, message, error?} envelope. The underlying
// cause only reaches the body outside production.
func Fail(c *gin.Context, err error) {
	log := logger.FromCtx(c.Request.Context())
	log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	body := gin.H{
		"success": false,
		"message": UserMessage(err),
	}
	if os.Getenv("APP_ENV") != "production" {
		body["error"] = err.Error()
	}

	c.AbortWithStatusJSON(StatusCode(err), body)
}

// OK renders a success envelope, merging the extra fields into it.
func OK(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
