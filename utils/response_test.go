package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hostel-backend/apperr"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestJSONMessage(t *testing.T) {
	w := record(func(c *gin.Context) {
		JSONMessage(c, http.StatusOK, "Room deleted successfully")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Room deleted successfully"}`, w.Body.String())
}

func TestJSONError_UsesStatusMapping(t *testing.T) {
	w := record(func(c *gin.Context) {
		JSONError(c, apperr.ErrRoomNotFound)
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Room not found","code":"ROOM_NOT_FOUND"}`, w.Body.String())
}

func TestJSONBadRequest(t *testing.T) {
	w := record(func(c *gin.Context) {
		JSONBadRequest(c, "Invalid request payload")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid request payload","code":"INVALID_PAYLOAD"}`, w.Body.String())
}
