package utils

import "errors"

// Error categories shared between the payment flow, the mail transport and the
// controllers that translate them to HTTP responses. Compare with errors.Is,
// wrapped details travel alongside via fmt.Errorf("%w: ...").
var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced student or course that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyEnrolled marks a duplicate completion attempt for a
	// (student, course) pair that already holds a completed payment.
	ErrAlreadyEnrolled = errors.New("student already enrolled in this course")

	// ErrSignatureMismatch marks a payment callback whose signature does not
	// verify against the shared secret.
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// ErrConfiguration marks missing server-side credentials. Operator fault,
	// not retriable by the client.
	ErrConfiguration = errors.New("credentials not configured")

	// ErrGatewayAuth marks a gateway rejection of our API credentials.
	ErrGatewayAuth = errors.New("gateway rejected credentials")

	// ErrGatewayRequest marks a gateway rejection of a malformed order request.
	ErrGatewayRequest = errors.New("gateway rejected request")

	// ErrMailTransport marks an outbound email dispatch failure.
	ErrMailTransport = errors.New("mail transport failure")
)
