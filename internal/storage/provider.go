// Package storage defines the read-only notes directory abstraction.
package storage

// Provider is the interface for notes directory access.
type Provider interface {
	// Root returns the absolute path of the notes root.
	Root() string
	// List returns the relative paths of all note files under the root,
	// in deterministic traversal order.
	List() ([]string, error)
	// Read returns the raw bytes of the note at path (relative to root).
	Read(path string) ([]byte, error)
}
