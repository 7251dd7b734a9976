package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDeserialization is matched by every DeserializationError.
var ErrDeserialization = errors.New("deserialization error")

// UserResponse is the top-level envelope of the users endpoint.
type UserResponse struct {
	Results []User `json:"results"`
	Info    *Info  `json:"info"`
	Error   string `json:"error,omitempty"`
}

// Info describes how the results were generated.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// DeserializationError reports a body that is not a users envelope.
type DeserializationError struct {
	Reason   string
	APIError string // the API's own "error" field, when it sent one
	Err      error
}

func (e *DeserializationError) Error() string {
	msg := "deserialize user response: " + e.Reason
	if e.APIError != "" {
		msg += fmt.Sprintf(" (api error: %q)", e.APIError)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeserializationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDeserialization}
	}
	return []error{ErrDeserialization, e.Err}
}

// envelopeShape is decoded first to check the top-level layout before
// committing to the typed model.
type envelopeShape struct {
	Results json.RawMessage `json:"results"`
	Info    json.RawMessage `json:"info"`
	Error   string          `json:"error"`
}

// DecodeUserResponse parses body into a UserResponse. Unknown fields are
// ignored. The body must be a JSON object with a results array and an info
// object.
func DecodeUserResponse(body []byte) (*UserResponse, error) {
	var shape envelopeShape
	if err := json.Unmarshal(body, &shape); err != nil {
		return nil, &DeserializationError{Reason: "malformed body", Err: err}
	}

	if !isJSONKind(shape.Results, '[') {
		return nil, &DeserializationError{Reason: "missing results array", APIError: shape.Error}
	}
	if !isJSONKind(shape.Info, '{') {
		return nil, &DeserializationError{Reason: "missing info object", APIError: shape.Error}
	}

	var resp UserResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DeserializationError{Reason: "schema mismatch", Err: err}
	}

	return &resp, nil
}

func isJSONKind(raw json.RawMessage, open byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == open
}
