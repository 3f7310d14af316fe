package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mliu/ledgerbook/internal/service"
	"github.com/mliu/ledgerbook/internal/storage"
)

func TestUnavailableStatusMapping(t *testing.T) {
	t.Run("unavailable outcomes map to 503", func(t *testing.T) {
		out := service.Outcome{OK: false, Code: service.CodeUnavailable, Message: "storage unavailable, try again later"}
		if got := statusFor(out); got != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", got)
		}
	})

	t.Run("read failures on a broken engine map to 503", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeReadError(rec, fmt.Errorf("list customers: disk I/O error: %w", storage.ErrStorageUnavailable))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", rec.Code)
		}
		var body outcomeResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.OK {
			t.Error("Expected ok=false in response body")
		}
	})

	t.Run("other read failures stay 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeReadError(rec, fmt.Errorf("list customers: %w", storage.ErrNotFound))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
	})
}
