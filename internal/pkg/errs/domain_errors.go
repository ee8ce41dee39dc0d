package errs

// Gateway-wide sentinel errors, matched with errors.Is / errs.Is
var (
	// Request errors
	ErrMissingCredential = New("session token required")

	// Reservation errors
	ErrNoActiveReservation = New("no active reservation")

	// Timer errors
	ErrInvalidTimerWindow = New("invalid timer end date/time")

	// Upstream errors
	ErrUpstreamDecode = New("upstream response could not be decoded")
)
