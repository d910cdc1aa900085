package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mkamau/warehouse-api/internal/http/handlers"
)

type bindProbe struct {
	Title string `json:"title" binding:"required"`
	Pages int    `json:"pages"`
}

func bindRouter(out func() any) *gin.Engine {
	r := gin.New()

	r.POST("/probe", func(ctx *gin.Context) {
		target := out()

		if !handlers.BindJSON(ctx, target) {
			return
		}

		ctx.JSON(http.StatusOK, target)
	})

	return r
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid",
			body:           `{"title":"ok","pages":3}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing_required_uses_wire_name",
			body:           `{"pages":3}`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "'title' is required",
		},
		{
			name:           "wrong_type_names_field",
			body:           `{"title":"ok","pages":"lots"}`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "'pages' is invalid",
		},
		{
			name:           "malformed_json",
			body:           `{"title":`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bindRouter(func() any { return &bindProbe{} })

			req := httptest.NewRequest(http.MethodPost, "/probe", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantError != "" {
				var resp struct {
					Error string `json:"error"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Fatalf("got error %q, want %q", resp.Error, tt.wantError)
				}
			}
		})
	}
}
