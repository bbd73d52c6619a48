package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestCallUserError_PrefersMsg(t *testing.T) {
	c, w := testContext()
	CallUserError(c, APIErrorParams{Msg: "FirstName required", Err: errors.New("missing field")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "FirstName required"}`, w.Body.String())
}

func TestCallUserError_FallsBackToErr(t *testing.T) {
	c, w := testContext()
	CallUserError(c, APIErrorParams{Err: errors.New("unexpected EOF")})
	assert.JSONEq(t, `{"error": "unexpected EOF"}`, w.Body.String())
}

func TestCallServerError_PrefersRawError(t *testing.T) {
	c, w := testContext()
	CallServerError(c, APIErrorParams{Msg: "Failed to create patient", Err: errors.New("UNIQUE constraint failed")})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "UNIQUE constraint failed"}`, w.Body.String())
}

func TestCallErrorNotFound(t *testing.T) {
	c, w := testContext()
	CallErrorNotFound(c, APIErrorParams{Msg: "Patient not found"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Patient not found"}`, w.Body.String())
}

func TestCallCreated(t *testing.T) {
	c, w := testContext()
	CallCreated(c, "PatientID", 12)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"PatientID": 12}`, w.Body.String())
}

func TestCallUpdated(t *testing.T) {
	c, w := testContext()
	CallUpdated(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
