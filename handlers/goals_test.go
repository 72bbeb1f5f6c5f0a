package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performGoalUpdate(body string, authed bool) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPut, "/api/goals/goal-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "goal-1"}}
	if authed {
		c.Set("userID", "user-1")
	}

	HandleUpdateGoal(c)
	return w
}

// A goal update binds an explicit field allow-list; anything outside it is
// rejected before the store is touched.
func TestUpdateGoalRejectsUnknownFields(t *testing.T) {
	w := performGoalUpdate(`{"bogus": 1}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown or malformed field")
}

func TestUpdateGoalValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown field alongside known ones", `{"name": "Trip", "color": "red"}`},
		{"zero target", `{"target_amount": 0}`},
		{"negative target", `{"target_amount": -5}`},
		{"negative saved amount", `{"saved_amount": -1}`},
		{"malformed json", `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performGoalUpdate(tt.body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateGoalRequiresAuthentication(t *testing.T) {
	w := performGoalUpdate(`{"name": "Trip"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
