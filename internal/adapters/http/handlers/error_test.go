package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "customer not found",
			err:        serviceerrors.NewNotFoundError("no customer").WithCode(serviceerrors.CodeCustomerNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "CUSTOMER_NOT_FOUND",
		},
		{
			name:       "insufficient stock",
			err:        serviceerrors.NewUnprocessableEntityError("not enough").WithCode(serviceerrors.CodeInsufficientStock),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_STOCK",
		},
		{
			name:       "stock conflict",
			err:        serviceerrors.NewConflictError("changed").WithCode(serviceerrors.CodeStockConflict),
			wantStatus: http.StatusConflict,
			wantCode:   "STOCK_CONFLICT",
		},
		{
			name:       "wrapped invalid request",
			err:        fmt.Errorf("bind: %w", serviceerrors.NewInvalidRequestError("bad body")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, body.Code)
			}
			if body.Error == "" {
				t.Fatal("expected error message")
			}
		})
	}
}
