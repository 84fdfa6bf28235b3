package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}

	b, err := json.Marshal(appErr.ToHTTPError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"error":{"code":"INTERNAL_ERROR","message":"An internal error occurred"}}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, string(b))
	}
}

func TestAppError_EmptyMessageFallsBackToStatusText(t *testing.T) {
	appErr := NewDomainErrorSimple("NOT_FOUND", "", http.StatusNotFound)
	if got := appErr.ToHTTPError().Error.Message; got != "Not Found" {
		t.Fatalf("expected status text, got %q", got)
	}
}
