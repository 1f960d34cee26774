package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrEmptyPayload = errors.New("payload is required")
)

type CreateProjectRequest struct {
	CustomerRequest string `json:"customer_request" binding:"required"`
}

func (r CreateProjectRequest) ResolveCustomerRequest() string {
	return strings.TrimSpace(r.CustomerRequest)
}

// ModifyRequest carries the human's replacement artifact. Details and quotes
// are sent as JSON objects; the email is sent as a JSON string.
type ModifyRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required" swaggertype:"object"`
}

// ResolvePayload returns the raw text handed to the gate validator.
func (r ModifyRequest) ResolvePayload() (string, error) {
	raw := bytes.TrimSpace(r.Payload)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", ErrEmptyPayload
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(raw), nil
}
