package capture

import "context"

// UseCase defines the business logic interface for the capture domain.
type UseCase interface {
	// Parse converts an utterance into structured actions without storing anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Capture parses the utterance, assigns record IDs, keeps the records in
	// the recent cache, and exports timed events to the calendar when one is
	// configured.
	Capture(ctx context.Context, input CaptureInput) (CaptureOutput, error)

	// Recent returns the capture records still in the recent cache, newest first.
	Recent(ctx context.Context) (RecentOutput, error)
}
