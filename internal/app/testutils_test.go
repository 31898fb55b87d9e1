package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/train-seat-reservation/api"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
	"github.com/metinatakli/train-seat-reservation/internal/validator"
)

func newTestApplication(t *testing.T, seatPool domain.SeatPool, opts ...func(*Application)) *Application {
	app, err := NewApp(
		Config{Port: 3000, Env: "test"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator.NewValidator(),
		seatPool,
	)
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var errorResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantStatus == http.StatusUnprocessableEntity && len(errorResp.ValidationErrors) > 0 {
		for _, vErr := range errorResp.ValidationErrors {
			if vErr.Issue == tt.wantErrMessage {
				return
			}
		}

		t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		return
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}

func ptr[T any](v T) *T {
	return &v
}
