package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/83bytes/bloggy/internal/logger"
	"github.com/83bytes/bloggy/internal/publisher"
	"github.com/83bytes/bloggy/internal/storage"
)

// Run executes the selected publishing operation. Primary output (paths,
// links) goes to stdout so it can be piped; diagnostics go to stderr.
func Run(_ context.Context, opts ...Option) error {
	app := &application{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.op == OpNone {
		return fmt.Errorf("operation is required")
	}

	cfg := app.config
	log := logger.New(app.stderr, cfg.App.Verbose)

	// Forward-link extraction takes an operator-named file and does not
	// need the notes root at all.
	if app.op == OpGetForwardLinks {
		links, err := publisher.ForwardLinks(app.note, cfg.Notes.AssetMarker)
		if err != nil {
			return err
		}
		log.Debug("forward links extracted", "path", app.note, "count", len(links))
		for _, l := range links {
			fmt.Fprintln(app.stdout, l.Target)
		}
		return nil
	}

	store, err := storage.NewFS(cfg.Notes.Path, cfg.Notes.Pattern)
	if err != nil {
		return fmt.Errorf("open notes directory: %w", err)
	}
	log.Debug("notes directory opened", "root", store.Root(), "pattern", cfg.Notes.Pattern)

	svc := publisher.New(store, log, cfg.Notes.AssetMarker)

	switch app.op {
	case OpListPublicPosts:
		paths, err := svc.PublicNotes()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(app.stdout, p)
		}
	case OpListPublicAssets:
		assets, err := svc.PublicAssets()
		if err != nil {
			return err
		}
		for _, a := range assets {
			fmt.Fprintln(app.stdout, a)
		}
	case OpLinkPublicAssets:
		return svc.LinkPublicAssets(cfg.Publish.AssetsDir)
	case OpLinkNowPosts:
		return svc.LinkNowPosts(cfg.Publish.NowDir)
	default:
		return fmt.Errorf("unknown operation %d", app.op)
	}
	return nil
}
