package library

import "github.com/pkg/errors"

// The three failure classes of the circulation core. Operations wrap these
// with context via errors.Wrapf, so callers can branch with errors.Is
// without parsing messages.
var (
	// ErrInvalidState signals a forbidden state transition, such as
	// committing a non-pending loan or borrowing a damaged book.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument signals a malformed request, such as making a
	// loan without a book or paying a negative amount.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPolicyViolation signals a request that is well formed and state
	// machine legal but blocked by lending policy, such as a restricted
	// patron taking out a loan.
	ErrPolicyViolation = errors.New("policy violation")
)
