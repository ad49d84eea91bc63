package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/83bytes/bloggy/internal"
	pkgconfig "github.com/83bytes/bloggy/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cmd.IsSet("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if cmd.IsSet("notes-dir") {
		cfg.Notes.Path = cmd.String("notes-dir")
	}
	if cmd.Bool("verbose") {
		cfg.App.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	op, note, err := selectOperation(cmd)
	if err != nil {
		_ = cli.ShowAppHelp(cmd)
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithOperation(op),
	}
	if note != "" {
		opts = append(opts, internal.WithNoteFile(note))
	}

	return internal.Run(ctx, opts...)
}

// selectOperation maps the mutually exclusive operation flags to an
// Operation, rejecting invocations with zero or more than one.
func selectOperation(cmd *cli.Command) (internal.Operation, string, error) {
	var (
		op   internal.Operation
		note string
		n    int
	)
	if cmd.Bool("list-public-posts") {
		op = internal.OpListPublicPosts
		n++
	}
	if f := cmd.String("get-forward-links"); f != "" {
		op = internal.OpGetForwardLinks
		note = f
		n++
	}
	if cmd.Bool("list-public-assets") {
		op = internal.OpListPublicAssets
		n++
	}
	if cmd.Bool("link-public-assets") {
		op = internal.OpLinkPublicAssets
		n++
	}
	if cmd.Bool("link-now-posts") {
		op = internal.OpLinkNowPosts
		n++
	}
	switch n {
	case 1:
		return op, note, nil
	case 0:
		return internal.OpNone, "", fmt.Errorf("exactly one operation flag is required")
	default:
		return internal.OpNone, "", fmt.Errorf("operation flags are mutually exclusive")
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "bloggy",
		Usage:  "Selective note publishing: scan markdown notes and materialize symlinks for the blog pipeline",
		Action: run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list-public-posts",
				Usage: "print absolute paths of public notes, one per line",
			},
			&cli.StringFlag{
				Name:  "get-forward-links",
				Usage: "print asset links found in `FILE`",
			},
			&cli.BoolFlag{
				Name:  "list-public-assets",
				Usage: "print the deduplicated asset whitelist across all public notes",
			},
			&cli.BoolFlag{
				Name:  "link-public-assets",
				Usage: "create asset symlinks into the posts-assets destination",
			},
			&cli.BoolFlag{
				Name:  "link-now-posts",
				Usage: "create symlinks for now-tagged notes into the now destination",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable diagnostic logging",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "config/config.yaml",
				Sources: cli.EnvVars("BLOGGY_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "notes-dir",
				Usage:   "Override the notes root directory",
				Sources: cli.EnvVars("BLOGGY_NOTES_DIR"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "bloggy:", err)
		os.Exit(1)
	}
}
