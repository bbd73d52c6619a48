package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	return db
}

func TestDatabaseMiddleware_InjectsHandle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newInMemoryDB(t)

	r := gin.New()
	r.Use(DatabaseMiddleware(db))
	r.GET("/ping", func(c *gin.Context) {
		assert.Same(t, db, GetDB(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDB_NilWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetDB(c))
}

func TestGetDB_NilOnWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("db", "not a gorm handle")
	assert.Nil(t, GetDB(c))
}
