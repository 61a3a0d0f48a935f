package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/marketscout/pkg/config"
	"github.com/ghuser/marketscout/pkg/logger"
	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrDuplicateExternalID", itemdomain.ErrDuplicateExternalID, http.StatusConflict},
		{"ErrInvalidArgument", itemdomain.ErrInvalidArgument, http.StatusBadRequest},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidArgument", fmt.Errorf("%w: platformId must be positive", itemdomain.ErrInvalidArgument), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_ProductionSanitizes500(t *testing.T) {
	Configure(true)
	t.Cleanup(func() { Configure(false) })

	infra := fmt.Errorf("insert item: %w",
		errors.New("connection refused host=db-internal:5432 user=marketscout"))

	t.Run("500 body is generic status text", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, infra)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response body is not valid JSON: %v", err)
		}
		if body["error"] != http.StatusText(http.StatusInternalServerError) {
			t.Fatalf("expected generic message, got %q", body["error"])
		}
		if strings.Contains(w.Body.String(), "db-internal") {
			t.Fatalf("internal detail leaked to client: %s", w.Body.String())
		}
	})

	t.Run("mapped 4xx keeps its message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, itemdomain.ErrItemNotFound)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), itemdomain.ErrItemNotFound.Error()) {
			t.Fatalf("expected sentinel message in body, got: %s", w.Body.String())
		}
	})
}

func TestLogAndWriteError_ProductionSanitizes500(t *testing.T) {
	Configure(true)
	t.Cleanup(func() { Configure(false) })

	log := logger.New(&config.Config{LogLevel: "error"})
	w := httptest.NewRecorder()
	infra := errors.New("pq: connection refused host=db-internal:5432")

	LogAndWriteError(context.Background(), log, w, "create item", infra, "external_item_id", "EBAY-1")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}

func TestLogAndWriteError_WritesMappedStatus(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found logs as warn", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"unexpected logs as error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			LogAndWriteError(context.Background(), log, w, "get item", tt.err, "item_id", 42)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.err.Error() {
				t.Fatalf("expected error %q, got %q", tt.err.Error(), body["error"])
			}
		})
	}
}
