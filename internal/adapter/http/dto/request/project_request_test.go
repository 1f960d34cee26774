package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCreateProjectRequest_ResolveCustomerRequest(t *testing.T) {
	r := CreateProjectRequest{CustomerRequest: "  I need a PP650  "}
	if got := r.ResolveCustomerRequest(); got != "I need a PP650" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestModifyRequest_ResolvePayload(t *testing.T) {
	t.Run("object payload kept as json text", func(t *testing.T) {
		var r ModifyRequest
		if err := json.Unmarshal([]byte(`{"payload": {"model": "PP600"}}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got, err := r.ResolvePayload()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got != `{"model": "PP600"}` {
			t.Fatalf("unexpected payload: %q", got)
		}
	})

	t.Run("string payload unquoted", func(t *testing.T) {
		var r ModifyRequest
		if err := json.Unmarshal([]byte(`{"payload": "Dear Jane,\nThanks"}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got, err := r.ResolvePayload()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got != "Dear Jane,\nThanks" {
			t.Fatalf("unexpected payload: %q", got)
		}
	})

	t.Run("null payload", func(t *testing.T) {
		r := ModifyRequest{Payload: json.RawMessage("null")}
		if _, err := r.ResolvePayload(); !errors.Is(err, ErrEmptyPayload) {
			t.Fatalf("expected ErrEmptyPayload, got %v", err)
		}
	})
}
