// Package publisher implements the note publishing operations: scanning,
// classification, whitelist aggregation, and symlink materialization.
package publisher

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/83bytes/bloggy/internal/apperr"
	"github.com/83bytes/bloggy/internal/logger"
	"github.com/83bytes/bloggy/internal/models"
	"github.com/83bytes/bloggy/internal/parser"
	"github.com/83bytes/bloggy/internal/storage"
	"github.com/83bytes/bloggy/internal/symlink"
)

// Service coordinates the notes directory scan and the operations derived
// from it.
type Service struct {
	store  storage.Provider
	log    *logger.Logger
	marker string // asset-directory marker substring, e.g. "assets"
}

// New creates a publishing service over the given notes provider.
func New(store storage.Provider, log *logger.Logger, marker string) *Service {
	return &Service{store: store, log: log, marker: marker}
}

// scan parses every note under the root. Unreadable notes are skipped with
// a warning so one bad file never aborts the batch; malformed front-matter
// degrades to an empty mapping inside the parser.
func (s *Service) scan() ([]models.Note, error) {
	paths, err := s.store.List()
	if err != nil {
		return nil, err
	}
	notes := make([]models.Note, 0, len(paths))
	for _, rel := range paths {
		data, err := s.store.Read(rel)
		if err != nil {
			s.log.NoteSkipped(rel, err)
			continue
		}
		res := parser.Parse(data)
		notes = append(notes, models.Note{
			Path:        rel,
			AbsPath:     filepath.Join(s.store.Root(), rel),
			Frontmatter: res.Frontmatter,
			Body:        res.Body,
			Public:      parser.IsPublic(res.Frontmatter),
			Now:         parser.IsNow(res.Frontmatter),
		})
	}
	return notes, nil
}

// PublicNotes returns the absolute paths of all public notes in traversal
// order.
func (s *Service) PublicNotes() ([]string, error) {
	notes, err := s.scan()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, n := range notes {
		if n.Public {
			out = append(out, n.AbsPath)
		}
	}
	s.log.Debug("public notes found", "count", len(out))
	return out, nil
}

// NowNotes returns all now-tagged notes in traversal order.
func (s *Service) NowNotes() ([]models.Note, error) {
	notes, err := s.scan()
	if err != nil {
		return nil, err
	}
	var out []models.Note
	for _, n := range notes {
		if n.Now {
			out = append(out, n)
		}
	}
	s.log.Debug("now notes found", "count", len(out))
	return out, nil
}

// PublicAssets returns the deduplicated asset whitelist across all public
// notes. The result is sorted so repeated runs over an unchanged tree are
// byte-identical.
func (s *Service) PublicAssets() ([]string, error) {
	notes, err := s.scan()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, n := range notes {
		if !n.Public {
			continue
		}
		for _, link := range parser.AssetLinks(n.Body, s.marker) {
			seen[link.Target] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for target := range seen {
		out = append(out, target)
	}
	sort.Strings(out)
	return out, nil
}

// LinkPublicAssets materializes a symlink under destDir for every
// whitelisted asset, preserving subdirectory structure. Conflicts and
// missing sources are reported and skipped; the batch itself completes.
func (s *Service) LinkPublicAssets(destDir string) error {
	assets, err := s.PublicAssets()
	if err != nil {
		return err
	}

	sourceDir := filepath.Join(s.store.Root(), s.marker)
	if _, err := os.Stat(sourceDir); err != nil {
		s.log.Warn("asset source directory not found", "dir", sourceDir)
		return nil
	}

	linked, skipped := 0, 0
	for _, asset := range assets {
		rel := filepath.FromSlash(s.assetRelPath(asset))
		source := filepath.Join(sourceDir, rel)
		dest := filepath.Join(destDir, filepath.Dir(rel))
		if err := symlink.LinkAs(source, dest, filepath.Base(rel)); err != nil {
			skipped++
			s.reportLinkErr(err)
			continue
		}
		linked++
		s.log.LinkCreated(filepath.Base(rel), source)
	}
	s.log.LinkSummary(destDir, linked, skipped)
	return nil
}

// LinkNowPosts links every now-tagged note into destDir.
func (s *Service) LinkNowPosts(destDir string) error {
	notes, err := s.NowNotes()
	if err != nil {
		return err
	}

	linked, skipped := 0, 0
	for _, n := range notes {
		name := nowLinkName(n)
		if err := symlink.LinkAs(n.AbsPath, destDir, name); err != nil {
			skipped++
			s.reportLinkErr(err)
			continue
		}
		linked++
		s.log.LinkCreated(name, n.AbsPath)
	}
	s.log.LinkSummary(destDir, linked, skipped)
	return nil
}

func (s *Service) reportLinkErr(err error) {
	switch {
	case errors.Is(err, apperr.ErrConflict):
		s.log.LinkConflict(err)
	case errors.Is(err, apperr.ErrMissingSource):
		s.log.MissingSource(err)
	default:
		s.log.Warn("link failed", "error", err)
	}
}

// assetRelPath strips everything up to and including the first "<marker>/"
// segment, leaving the link path relative to the asset directory.
func (s *Service) assetRelPath(link string) string {
	if i := strings.Index(link, s.marker+"/"); i >= 0 {
		return link[i+len(s.marker)+1:]
	}
	return path.Base(link)
}

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// nowLinkName returns the link name for a now post: the file name as-is
// when it already starts with a YYYY-MM-DD date, otherwise prefixed with
// the front-matter "date" value so the now feed stays chronological.
func nowLinkName(n models.Note) string {
	base := filepath.Base(n.Path)
	if datePrefixRe.MatchString(base) {
		return base
	}
	if date := n.Frontmatter.Scalar("date"); date != "" {
		return date + "_" + base
	}
	return base
}

// ForwardLinks extracts asset links from a single note file. The path is
// resolved against the working directory rather than the notes root so the
// operator can name any file.
func ForwardLinks(notePath, marker string) ([]models.LinkRef, error) {
	data, err := os.ReadFile(notePath)
	if err != nil {
		return nil, fmt.Errorf("read note %s: %w", notePath, err)
	}
	res := parser.Parse(data)
	return parser.AssetLinks(res.Body, marker), nil
}
