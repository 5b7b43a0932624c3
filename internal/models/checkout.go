package models

import "fmt"

// PurchaseRequest is the body of POST /create-checkout-session. PriceCents is a
// pointer so a missing field can be told apart from an explicit zero.
type PurchaseRequest struct {
	PriceCents *int64            `json:"price_cents"`
	Currency   string            `json:"currency"`
	Quantity   int64             `json:"quantity"`
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata"`
}

// LineItemView carries the client-facing description of one purchased item.
type LineItemView struct {
	Description string `json:"description"`
}

// SessionStatus is the normalized projection of a Stripe checkout session
// returned by GET /session-status. Status is Stripe's payment_status value
// passed through unmodified.
type SessionStatus struct {
	Status        string         `json:"status"`
	CustomerEmail string         `json:"customer_email,omitempty"`
	LineItems     []LineItemView `json:"line_items"`
}

type ErrorKind int

const (
	// KindInvalidRequest marks caller-supplied data that failed validation
	// before any processor call was made.
	KindInvalidRequest ErrorKind = iota
	// KindProcessor marks a failure reported by the payment processor. The
	// wrapped cause stays server-side; only Message is safe for clients.
	KindProcessor
)

// Error is the tagged failure type crossing the service boundary. Handlers map
// Kind to a transport status; Message never contains processor internals.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func ProcessorFailure(msg string, cause error) *Error {
	return &Error{Kind: KindProcessor, Message: msg, Err: cause}
}
