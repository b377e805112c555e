package dto

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Envelope is the single typed contract every directory response is
// normalized into before it reaches the core.
type Envelope struct {
	Success bool
	Data    json.RawMessage
	Error   string
	Raw     json.RawMessage
}

type rawEnvelope struct {
	Success *bool           `json:"success"`
	Code    *int            `json:"code"`
	Mess    string          `json:"mess"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// DecodeEnvelope accepts both {success, data|error} and {code, mess, data}.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}

	env := Envelope{Data: raw.Data, Raw: body}
	switch {
	case raw.Success != nil:
		env.Success = *raw.Success
	case raw.Code != nil:
		env.Success = *raw.Code == 1
	default:
		env.Success = len(raw.Error) == 0 || isNull(raw.Error)
	}

	if !env.Success {
		env.Error = errorMessage(raw)
	}
	return env, nil
}

// DecodeData unmarshals env.Data into target.
func (e Envelope) DecodeData(target interface{}) error {
	if len(e.Data) == 0 || isNull(e.Data) {
		return fmt.Errorf("response has no data")
	}
	return json.Unmarshal(e.Data, target)
}

// DecodeList unmarshals a list that may arrive bare or wrapped in
// {"items": [...]} / {"data": [...]}.
func (e Envelope) DecodeList(target interface{}) error {
	data := bytes.TrimSpace(e.Data)
	if len(data) == 0 || isNull(data) {
		return json.Unmarshal([]byte("[]"), target)
	}
	if data[0] == '[' {
		return json.Unmarshal(data, target)
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("decode list: %w", err)
	}
	switch {
	case len(wrapper.Items) > 0:
		return json.Unmarshal(wrapper.Items, target)
	case len(wrapper.Data) > 0:
		return json.Unmarshal(wrapper.Data, target)
	}
	return fmt.Errorf("decode list: unexpected shape")
}

func errorMessage(raw rawEnvelope) string {
	if len(raw.Error) > 0 && !isNull(raw.Error) {
		var s string
		if err := json.Unmarshal(raw.Error, &s); err == nil {
			return s
		}
		var obj struct {
			Message string `json:"message"`
			Mess    string `json:"mess"`
			Code    string `json:"code"`
		}
		if err := json.Unmarshal(raw.Error, &obj); err == nil {
			if obj.Message != "" {
				return obj.Message
			}
			if obj.Mess != "" {
				return obj.Mess
			}
			if obj.Code != "" {
				return obj.Code
			}
		}
		return strings.TrimSpace(string(raw.Error))
	}
	if raw.Message != "" {
		return raw.Message
	}
	if raw.Mess != "" {
		return raw.Mess
	}
	return "unknown error"
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
