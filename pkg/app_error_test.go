package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	simple := NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", simple.HTTPStatus)
	}
	body := simple.ToHTTPError()
	if body.Code != "PROJECT_NOT_FOUND" || body.Details != "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	cause := errors.New("model timeout")
	wrapped := NewDomainError("COLLABORATOR_FAILED", "Stage failed", cause, http.StatusBadGateway)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if wrapped.ToHTTPError().Details != "model timeout" {
		t.Fatalf("unexpected details: %+v", wrapped.ToHTTPError())
	}

	detailed := simple.WithDetails(cause)
	if simple.Err != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	if detailed.Error() != "PROJECT_NOT_FOUND: Project not found: model timeout" {
		t.Fatalf("unexpected message: %s", detailed.Error())
	}
}
