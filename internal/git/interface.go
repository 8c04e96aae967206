package git

import "context"

// ClientInterface defines the revision queries gitstamp needs from a
// repository backend. This interface enables mocking for testing the
// core package.
type ClientInterface interface {
	// Head returns the full hex object ID of the current head commit.
	Head(ctx context.Context) (string, error)

	// IsDirty reports whether the working tree differs from the head
	// commit.
	IsDirty(ctx context.Context) (bool, error)

	// Branch returns the current branch name, or "" when HEAD is
	// detached.
	Branch(ctx context.Context) (string, error)
}

// Verify that *Client implements ClientInterface at compile time
var _ ClientInterface = (*Client)(nil)
