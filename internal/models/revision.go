package models

// RevisionState represents the revision a repository currently has
// checked out.
type RevisionState struct {
	SHA    string // Full hex object ID of the head commit
	Dirty  bool   // True if the working tree differs from the head commit
	Branch string // Empty if detached HEAD
}

// ShortSHA returns the first 8 characters of the head commit ID.
func (r RevisionState) ShortSHA() string {
	if len(r.SHA) > 8 {
		return r.SHA[:8]
	}
	return r.SHA
}

// DirtyString returns the dirty flag as the lowercase string "true"
// or "false", the form templates receive.
func (r RevisionState) DirtyString() string {
	if r.Dirty {
		return "true"
	}
	return "false"
}
