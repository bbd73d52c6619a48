package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIErrorParams carries a human-readable message and the underlying error.
// The wire payload is always {"error": <message>}; validation errors prefer
// Msg, store errors surface the raw error text.
type APIErrorParams struct {
	Msg string
	Err error
}

func userMessage(params APIErrorParams) string {
	if params.Msg != "" {
		return params.Msg
	}
	if params.Err != nil {
		return params.Err.Error()
	}
	return "request failed"
}

func storeMessage(params APIErrorParams) string {
	if params.Err != nil {
		return params.Err.Error()
	}
	return userMessage(params)
}

// CallUserError returns a 400 response for validation failures.
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, gin.H{"error": userMessage(params)})
}

// CallErrorNotFound returns a 404 response when the primary entity is absent.
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, gin.H{"error": userMessage(params)})
}

// CallServerError returns a 500 response carrying the raw store error message.
func CallServerError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": storeMessage(params)})
}

// CallTooManyRequests returns a 429 response when a client is rate limited.
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": userMessage(params)})
}

// CallSuccessOK returns a 200 response with the given payload as-is.
func CallSuccessOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CallUpdated returns the {"ok": true} payload every update endpoint responds with.
func CallUpdated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CallCreated returns a 201 response with the generated identifier under the
// entity's ID field name, e.g. {"PatientID": 12}.
func CallCreated(c *gin.Context, idField string, id uint) {
	c.JSON(http.StatusCreated, gin.H{idField: id})
}
