package playlist

import "errors"

// The three domain error kinds. Call sites wrap them with a concrete
// message via fmt.Errorf("...: %w", ...); handlers map the kinds onto
// HTTP status codes and treat anything else as a store failure.
var (
	// ErrNotFound: the referenced playlist, song or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the caller is neither owner nor collaborator of the
	// target playlist.
	ErrForbidden = errors.New("forbidden")

	// ErrInvariant: a write that should have affected rows affected
	// none. A data-integrity concern, not a caller mistake.
	ErrInvariant = errors.New("invariant violation")
)
