package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Liveness check
// @Description  Reports whether the service and its database are reachable
// @Tags         Health
// @Produce      json
// @Success      200 {object} model.HealthResponse
// @Failure      500 {object} map[string]interface{}
// @Router       /health [get]
func Health(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "db": one == 1})
}
