package publisher

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/83bytes/bloggy/internal/logger"
	"github.com/83bytes/bloggy/internal/storage"
)

func tempNotes(t *testing.T, files map[string]string) (string, *Service) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := storage.NewFS(dir, "**/*.md")
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, New(store, logger.Discard(), "assets")
}

func TestPublicNotes_Classification(t *testing.T) {
	dir, svc := tempNotes(t, map[string]string{
		"a.md": "---\npublic: true\n---\nA",
		"b.md": "---\npublic: TRUE\n---\nB",
		"c.md": "---\npublic: false\n---\nC",
		"d.md": "no frontmatter at all",
		"e.md": "---\npublic: true\nunclosed block",
	})
	got, err := svc.PublicNotes()
	if err != nil {
		t.Fatalf("PublicNotes: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("public notes = %v, want %v", got, want)
	}
}

func TestPublicNotes_MalformedAmongValid(t *testing.T) {
	files := map[string]string{
		"bad.md": "---\npublic: true\nno closing marker",
	}
	for _, name := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9"} {
		files[name+".md"] = "---\npublic: true\n---\nbody"
	}
	_, svc := tempNotes(t, files)
	got, err := svc.PublicNotes()
	if err != nil {
		t.Fatalf("PublicNotes: %v", err)
	}
	if len(got) != 9 {
		t.Errorf("len = %d, want 9: %v", len(got), got)
	}
	for _, p := range got {
		if filepath.Base(p) == "bad.md" {
			t.Error("malformed note must not be listed as public")
		}
	}
}

func TestPublicAssets_DeduplicatedSortedDeterministic(t *testing.T) {
	_, svc := tempNotes(t, map[string]string{
		"one.md": "---\npublic: true\n---\n[b](assets/b.png) and [a](assets/a.png)",
		"two.md": "---\npublic: true\n---\n[a again](assets/a.png)",
		"prv.md": "---\npublic: false\n---\n[secret](assets/secret.png)",
	})
	first, err := svc.PublicAssets()
	if err != nil {
		t.Fatalf("PublicAssets: %v", err)
	}
	want := []string{"assets/a.png", "assets/b.png"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("assets = %v, want %v", first, want)
	}
	second, err := svc.PublicAssets()
	if err != nil {
		t.Fatalf("PublicAssets again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ: %v vs %v", first, second)
	}
}

func TestForwardLinks_Exact(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "a.md")
	content := "---\npublic: true\n---\n[img](assets/x.png)\n"
	if err := os.WriteFile(note, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	links, err := ForwardLinks(note, "assets")
	if err != nil {
		t.Fatalf("ForwardLinks: %v", err)
	}
	if len(links) != 1 || links[0].Target != "assets/x.png" {
		t.Errorf("links = %v, want exactly assets/x.png", links)
	}
}

func TestForwardLinks_MissingFile(t *testing.T) {
	if _, err := ForwardLinks(filepath.Join(t.TempDir(), "absent.md"), "assets"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLinkPublicAssets_CreatesAndIdempotent(t *testing.T) {
	dir, svc := tempNotes(t, map[string]string{
		"note.md":            "---\npublic: true\n---\n[x](assets/x.png) [deep](assets/sub/d.png) [gone](assets/missing.png)",
		"assets/x.png":       "png bytes",
		"assets/sub/d.png":   "more bytes",
		"assets/ignored.png": "unreferenced",
	})
	destDir := filepath.Join(t.TempDir(), "posts-assets")

	if err := svc.LinkPublicAssets(destDir); err != nil {
		t.Fatalf("LinkPublicAssets: %v", err)
	}

	for link, source := range map[string]string{
		filepath.Join(destDir, "x.png"):          filepath.Join(dir, "assets", "x.png"),
		filepath.Join(destDir, "sub", "d.png"):   filepath.Join(dir, "assets", "sub", "d.png"),
	} {
		target, err := os.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink %s: %v", link, err)
		}
		if target != source {
			t.Errorf("link %s points at %q, want %q", link, target, source)
		}
	}
	if _, err := os.Lstat(filepath.Join(destDir, "missing.png")); err == nil {
		t.Error("missing source must not produce a link")
	}
	if _, err := os.Lstat(filepath.Join(destDir, "ignored.png")); err == nil {
		t.Error("unreferenced asset must not be linked")
	}

	// Second run over an unchanged tree must succeed without touching links.
	if err := svc.LinkPublicAssets(destDir); err != nil {
		t.Errorf("second run: %v", err)
	}
	target, _ := os.Readlink(filepath.Join(destDir, "x.png"))
	if target != filepath.Join(dir, "assets", "x.png") {
		t.Errorf("link modified on rerun: %q", target)
	}
}

func TestLinkNowPosts_DatePrefixing(t *testing.T) {
	dir, svc := tempNotes(t, map[string]string{
		"update.md":          "---\ntags: [now]\ndate: 2024-05-01\n---\nstatus",
		"2023-11-09-old.md":  "---\ntags: now, blog\n---\nalready dated",
		"undated.md":         "---\ntags:\n  - now\n---\nno date field",
		"unrelated.md":       "---\ntags: [nowhere]\n---\nnot a now post",
	})
	destDir := filepath.Join(t.TempDir(), "now")

	if err := svc.LinkNowPosts(destDir); err != nil {
		t.Fatalf("LinkNowPosts: %v", err)
	}

	for link, source := range map[string]string{
		filepath.Join(destDir, "2024-05-01_update.md"): filepath.Join(dir, "update.md"),
		filepath.Join(destDir, "2023-11-09-old.md"):    filepath.Join(dir, "2023-11-09-old.md"),
		filepath.Join(destDir, "undated.md"):           filepath.Join(dir, "undated.md"),
	} {
		target, err := os.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink %s: %v", link, err)
		}
		if target != source {
			t.Errorf("link %s points at %q, want %q", link, target, source)
		}
	}
	if _, err := os.Lstat(filepath.Join(destDir, "unrelated.md")); err == nil {
		t.Error("nowhere-tagged note must not be linked")
	}
}
