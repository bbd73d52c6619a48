package endpoint

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyaventures/opd-server/middleware"
	"github.com/arogyaventures/opd-server/util"
)

// Row caps matching the original UI expectations: histories show the most
// recent 50 entries, a doctor's queue at most 100.
const (
	historyLimit = 50
	pendingLimit = 100
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// getDBOrAbort fetches the request-scoped DB handle, replying 500 when the
// database middleware was never installed.
func getDBOrAbort(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// parseIDParam parses the :id path segment. Zero and garbage are both
// rejected, matching the original API's Number() check.
func parseIDParam(c *gin.Context, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s id", label),
			Err: fmt.Errorf("id must be a positive integer"),
		})
		return 0, false
	}
	return uint(id), true
}

func nowDateTime() string {
	return time.Now().Format(dateTimeLayout)
}

func todayDate() string {
	return time.Now().Format(dateLayout)
}

// parseDateTime accepts the datetime shapes clients actually send: SQL-style,
// HTML datetime-local, and RFC3339.
func parseDateTime(value string) (time.Time, error) {
	layouts := []string{
		dateTimeLayout,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.RFC3339,
		dateLayout,
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// minutesUntil reports whole minutes from now to the given datetime, negative
// when it is already past. Unparseable input yields zero.
func minutesUntil(value string) int64 {
	t, err := parseDateTime(value)
	if err != nil {
		return 0
	}
	return int64(time.Until(t).Minutes())
}
