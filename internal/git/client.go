// Package git queries revision state from a local repository by
// shelling out to the git executable.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrGitNotFound means the git executable is not available on
	// the host.
	ErrGitNotFound = errors.New("git executable not found")

	// ErrNotARepository means no repository root was found in the
	// directory chain.
	ErrNotARepository = errors.New("not a git repository (or any parent up to root)")

	// ErrUnbornHead means the repository exists but has no commits
	// to stamp.
	ErrUnbornHead = errors.New("repository has no commits yet")
)

// Options configures a Client.
type Options struct {
	Binary    string // git executable name or path, "git" if empty
	Untracked bool   // count untracked files as dirty
}

// Client queries a repository through the git CLI. All commands run
// rooted at the resolved repository root, so the client's behavior
// does not depend on the process working directory after creation.
type Client struct {
	binary    string
	repoRoot  string
	untracked bool
}

// NewClient locates the git executable and the repository enclosing
// startDir. A missing executable produces an error telling the
// operator how to remedy it.
func NewClient(startDir string, opts Options) (*Client, error) {
	binary := opts.Binary
	if binary == "" {
		binary = "git"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not on PATH. Install git (e.g. 'apt install git' or 'brew install git') and re-run", ErrGitNotFound, binary)
	}

	root, err := FindRepoRoot(startDir)
	if err != nil {
		return nil, err
	}

	return &Client{binary: path, repoRoot: root, untracked: opts.Untracked}, nil
}

// RepoRoot returns the resolved repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// Head returns the full hex object ID of the current head commit.
func (c *Client) Head(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--verify", "HEAD")
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "needed a single revision") || strings.Contains(msg, "unknown revision") {
			return "", ErrUnbornHead
		}
		return "", err
	}
	return out, nil
}

// IsDirty reports whether the working tree differs from the head
// commit. By default only tracked-file changes (staged or unstaged)
// count; untracked files are included when the client was created
// with Options.Untracked.
func (c *Client) IsDirty(ctx context.Context) (bool, error) {
	mode := "--untracked-files=no"
	if c.untracked {
		mode = "--untracked-files=all"
	}

	out, err := c.run(ctx, "status", "--porcelain", mode)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Branch returns the current branch name, or "" when HEAD is
// detached.
func (c *Client) Branch(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if out == "HEAD" {
		// rev-parse prints the literal string HEAD when detached
		return "", nil
	}
	return out, nil
}

// run executes a git command rooted at the repository and returns its
// trimmed stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", c.repoRoot}, args...)
	cmd := exec.CommandContext(ctx, c.binary, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %s", args[0], msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
