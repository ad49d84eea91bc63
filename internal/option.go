package internal

import "io"

// Operation selects which publishing action Run performs.
type Operation int

const (
	OpNone Operation = iota
	OpListPublicPosts
	OpGetForwardLinks
	OpListPublicAssets
	OpLinkPublicAssets
	OpLinkNowPosts
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	op     Operation
	note   string // target file for OpGetForwardLinks
	stdout io.Writer
	stderr io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOperation selects the operation to perform.
func WithOperation(op Operation) Option {
	return func(a *application) {
		a.op = op
	}
}

// WithNoteFile sets the note file for the forward-links operation.
func WithNoteFile(path string) Option {
	return func(a *application) {
		a.note = path
	}
}

// WithStdout redirects primary output. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}

// WithStderr redirects diagnostics. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(a *application) {
		a.stderr = w
	}
}
