// Package protocol defines the tool-invocation contract: the request
// shape submitted by a host, the uniform response envelope returned for
// every invocation, and the error taxonomy shared by the registry and
// the serving surfaces.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Request represents a single tool invocation submitted by a host.
type Request struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Response is the envelope returned for every invocation. Exactly one
// of Payload or Err is populated; OK and Fail are the only intended
// constructors, so the invariant holds by construction.
//
// On the wire a success envelope flattens the payload into the
// envelope object:
//
//	{"success":true,"message":"Hello, World!","timestamp":"..."}
//	{"success":false,"error":"unknown_tool: no tool named \"x\""}
type Response struct {
	Success bool
	Payload map[string]any
	Err     string
}

// OK creates a success envelope wrapping the handler's payload.
func OK(payload map[string]any) *Response {
	return &Response{Success: true, Payload: payload}
}

// Fail creates a failure envelope with the given message.
func Fail(msg string) *Response {
	return &Response{Success: false, Err: msg}
}

// FailErr creates a failure envelope from an error. Taxonomy errors
// keep their code prefix in the message.
func FailErr(err error) *Response {
	return Fail(err.Error())
}

// reserved envelope keys; payload keys colliding with them are dropped.
const (
	keySuccess = "success"
	keyError   = "error"
)

// MarshalJSON flattens the payload into the envelope object.
func (r *Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Payload)+2)
	if r.Success {
		for k, v := range r.Payload {
			if k == keySuccess || k == keyError {
				continue
			}
			out[k] = v
		}
	} else {
		out[keyError] = r.Err
	}
	out[keySuccess] = r.Success
	return json.Marshal(out)
}

// UnmarshalJSON reverses the flattening performed by MarshalJSON.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	success, ok := raw[keySuccess].(bool)
	if !ok {
		return fmt.Errorf("envelope missing boolean %q field", keySuccess)
	}

	r.Success = success
	r.Payload = nil
	r.Err = ""

	if !success {
		msg, ok := raw[keyError].(string)
		if !ok {
			return fmt.Errorf("failure envelope missing string %q field", keyError)
		}
		r.Err = msg
		return nil
	}

	delete(raw, keySuccess)
	r.Payload = raw
	return nil
}
