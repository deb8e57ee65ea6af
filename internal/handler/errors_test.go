package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"facturation/internal/billing"

	"github.com/gin-gonic/gin"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &billing.ValidationError{Reason: "quantity must be positive"}, http.StatusBadRequest},
		{"not found", &billing.NotFoundError{Entity: "client", Code: "CLI999"}, http.StatusNotFound},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeError(c, tc.err)

			if rec.Code != tc.want {
				t.Fatalf("expected status %d got %d", tc.want, rec.Code)
			}
		})
	}
}
