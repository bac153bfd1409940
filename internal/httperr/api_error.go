package httperr

import (
	"fmt"
)

// Kind classifies a failed call to the remote API.
type Kind int

const (
	// KindRequest: the request could not be built or sent for a local reason.
	KindRequest Kind = iota
	// KindResponse: the server answered with a non-2xx status.
	KindResponse
	// KindNetwork: no response was received.
	KindNetwork
	// KindTimeout: the client gave up waiting.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// APIBody is the error payload produced by the remote API.
type APIBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// APIError wraps every failure of the remote API client.
type APIError struct {
	Kind   Kind
	Method string
	Path   string
	Status int // zero unless Kind is KindResponse
	Body   *APIBody
	Err    error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindResponse:
		return fmt.Sprintf("Request failed with status code %d", e.Status)
	case KindNetwork:
		return "Network Error"
	case KindTimeout:
		if e.Err != nil {
			return "timeout exceeded: " + e.Err.Error()
		}
		return "timeout exceeded"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request error"
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the server produced a response.
func (e *APIError) HasResponse() bool {
	return e.Kind == KindResponse
}
