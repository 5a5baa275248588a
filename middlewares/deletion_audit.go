package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/cafe-api/utils"
)

// DeletionAuditMiddleware records every report-closed attempt and how it ended.
func DeletionAuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := logrus.Fields{
			"cafe_id":    c.Param("cafe_id"),
			"client_ip":  c.ClientIP(),
			"status":     c.Writer.Status(),
			"request_id": c.GetString(requestIDKey),
		}
		switch c.Writer.Status() {
		case http.StatusOK:
			utils.InfoLogger.WithFields(fields).Info("cafe reported closed")
		case http.StatusForbidden:
			utils.ErrorLogger.WithFields(fields).Error("report-closed rejected: bad api key")
		default:
			utils.InfoLogger.WithFields(fields).Warn("report-closed failed")
		}
	}
}

// redactQuery hides the api-key value before a path reaches the logs.
func redactQuery(path string) string {
	i := strings.IndexByte(path, '?')
	if i < 0 {
		return path
	}
	q, err := url.ParseQuery(path[i+1:])
	if err != nil {
		// an unparseable query may still carry the key somewhere
		return path[:i] + "?REDACTED"
	}
	if !q.Has("api-key") {
		return path
	}
	q.Set("api-key", "REDACTED")
	return path[:i] + "?" + q.Encode()
}
