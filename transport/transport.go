package transport

import (
	"context"
	"fmt"
)

// Request is one request message and the values of its HTTP extension
// headers
type Request struct {
	// Body is the CIM-XML message text
	Body string
	// Method is the CIMMethod header value. It is empty for batches.
	Method string
	// Object is the CIMObject header value. It is empty for batches.
	Object string
	// Batch is true for MULTIREQ messages
	Batch bool
	// ProtocolVersion is the CIMProtocolVersion header value
	ProtocolVersion string
}

// Exchanger sends a request and returns the response message text
type Exchanger interface {
	Exchange(ctx context.Context, req *Request) (string, error)
}

// ExchangeFunc adapts a function to an Exchanger
type ExchangeFunc func(ctx context.Context, req *Request) (string, error)

// Exchange calls f(ctx, req)
func (f ExchangeFunc) Exchange(ctx context.Context, req *Request) (string, error) { return f(ctx, req) }

// StatusError is a non-success HTTP response
type StatusError struct {
	StatusCode int
	Status     string
	// CIMError is the CIMError header value, if any
	CIMError string
	// Body is the start of the response body
	Body string
}

func (e *StatusError) Error() string {
	s := fmt.Sprintf("cim-xml: unexpected status %s", e.Status)
	if e.CIMError != "" {
		s += " (CIMError: " + e.CIMError + ")"
	}
	if e.Body != "" {
		s += ": " + e.Body
	}
	return s
}
