package playback

import "github.com/cockroachdb/errors"

// Error classes. Returned errors are marked with one of these; use errors.Is.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrPreconditionViolated = errors.New("precondition violated")
)

// Precondition failures.
var (
	ErrNoTrack = errors.Mark(errors.New("no current track"), ErrPreconditionViolated)
	ErrClosed  = errors.Mark(errors.New("controller closed"), ErrPreconditionViolated)
)

func invalidArgument(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}
