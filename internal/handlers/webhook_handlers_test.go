package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWebhookHandler_HandleNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewWebhookHandler(nil)

	tests := []struct {
		name  string
		query string
	}{
		{name: "payment topic with legacy parameters", query: "topic=payment&id=123"},
		{name: "payment type with data.id", query: "type=payment&data.id=456"},
		{name: "unrelated topic", query: "topic=merchant_order&id=789"},
		{name: "no parameters at all", query: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/webhook?"+tc.query, nil)

			handler.HandleNotification(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "OK", w.Body.String())
		})
	}
}
