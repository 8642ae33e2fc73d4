package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zalioth/SudokuHex/internal/domain"
)

func TestFSSaveLoadList(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:        "p1",
		Name:      "bench puzzle",
		Template:  strings.Repeat(".", domain.NumCells),
		CreatedAt: 42,
	}
	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := fs.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Template != p.Template || got.Name != p.Name {
		t.Fatalf("loaded puzzle differs: %+v", got)
	}

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "p1" || metas[0].CreatedAt != 42 {
		t.Fatalf("unexpected listing: %+v", metas)
	}
}

func TestFSSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("Save accepted a puzzle without ID")
	}
}

func TestFSListEmptyDir(t *testing.T) {
	fs := NewFS(filepath.Join(t.TempDir(), "missing"))
	metas, err := fs.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 0 {
		t.Fatalf("unexpected entries: %+v", metas)
	}
}

func TestReadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all.txt")
	content := "# benchmark set\n" +
		strings.Repeat(".", domain.NumCells) + "\n" +
		"\n" +
		strings.Repeat("-", domain.NumCells) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := ReadTemplates(path)
	if err != nil {
		t.Fatalf("ReadTemplates failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d templates, want 2", len(got))
	}
	if got[0][0] != '.' || got[1][0] != '-' {
		t.Fatalf("unexpected templates: %q", got)
	}
}
