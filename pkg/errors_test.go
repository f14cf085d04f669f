package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("SCAN_REQUIRED", "scan first", http.StatusPreconditionFailed)
		if e.HTTPStatus != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", e.HTTPStatus)
		}
		if e.Error() != "SCAN_REQUIRED: scan first" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "SCAN_REQUIRED" || body.Message != "scan first" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "internal", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.Error() != "INTERNAL_ERROR: internal: boom" {
			t.Fatalf("unexpected message %q", e.Error())
		}
	})
}
