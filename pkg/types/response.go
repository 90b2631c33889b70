package types

// Envelope is the `{success: true, <entity>: ...}` wrapper mutating
// endpoints return. Entity payloads are added per endpoint via With.
type Envelope map[string]any

// NewEnvelope starts an envelope with the success flag set.
func NewEnvelope(success bool) Envelope {
	return Envelope{"success": success}
}

// With adds a named payload to the envelope and returns it for chaining.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
