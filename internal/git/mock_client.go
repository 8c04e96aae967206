package git

import (
	"context"
	"strings"
)

// MockClient is a mock implementation of ClientInterface for testing.
type MockClient struct {
	// SHA is the head commit ID returned by Head
	SHA string
	// Dirty is the flag returned by IsDirty
	Dirty bool
	// BranchName is returned by Branch; empty means detached HEAD
	BranchName string
	// Err can be set to make methods return an error
	Err error
}

// NewMockClient creates a new MockClient for testing, positioned on a
// clean all-zeros commit.
func NewMockClient() *MockClient {
	return &MockClient{
		SHA:        strings.Repeat("0", 40),
		BranchName: "main",
	}
}

// Head returns the mock head commit ID.
func (m *MockClient) Head(ctx context.Context) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.SHA, nil
}

// IsDirty returns the mock dirty flag.
func (m *MockClient) IsDirty(ctx context.Context) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Dirty, nil
}

// Branch returns the mock branch name.
func (m *MockClient) Branch(ctx context.Context) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.BranchName, nil
}
