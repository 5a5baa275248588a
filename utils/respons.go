package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error bodies keep the shape clients of the cafe API already parse:
// {"error": {"<kind>": "<message>"}}.
const (
	KindNotFound    = "Not found"
	KindServerError = "Internal server error"
)

const (
	MsgNoCafesInLocation = "Sorry we don't have any cafes in this location"
	MsgCafeNotFound      = "Sorry a cafe with that id was not found in the database."
	MsgWrongAPIKey       = "Please enter the correct API key."
	MsgCafeAdded         = "Successfully added the new cafe."
	MsgPriceUpdated      = "Successfully updated the price"
	MsgCafeDeleted       = "Successfully deleted cafe"
)

func RespondErrorBody(c *gin.Context, code int, kind, message string) {
	c.JSON(code, gin.H{
		"error": gin.H{kind: message},
	})
}

func RespondNotFound(c *gin.Context, code int, message string) {
	RespondErrorBody(c, code, KindNotFound, message)
}

// RespondServerError logs err and answers 500. It is the landing spot for the
// failures no handler recovers from: duplicate names, an empty table on
// /random, database errors.
func RespondServerError(c *gin.Context, err error) {
	ErrorLogger.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error(err)
	RespondErrorBody(c, http.StatusInternalServerError, KindServerError, err.Error())
}

func RespondSuccess(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"Success": message})
}
