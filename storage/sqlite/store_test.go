package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/mole-strike/storage"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mole.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := openTestStore(t)
	if _, err := s.Get(context.Background(), "WAM_BEST_V1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get missing err = %v, want ErrNotFound", err)
	}
}

func TestStore_PutUpserts(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	for _, v := range []string{"5", "9"} {
		if err := s.Put(ctx, "WAM_BEST_V1", v); err != nil {
			t.Fatalf("Put(%s): %v", v, err)
		}
	}
	got, err := s.Get(ctx, "WAM_BEST_V1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "9" {
		t.Errorf("Get = %q, want %q", got, "9")
	}
}

func TestStore_ReopenKeepsBestAndMigratesOnce(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()
	best := storage.NewBestScore(s, "WAM_BEST_V1")
	if _, _, err := best.Record(ctx, 7); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got := storage.NewBestScore(reopened, "WAM_BEST_V1").Load(ctx); got != 7 {
		t.Errorf("Load after reopen = %d, want 7", got)
	}

	var applied int
	if err := reopened.sqlDB.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied migrations = %d, want 1", applied)
	}
}

func TestExtractUp(t *testing.T) {
	got := extractUp("-- +migrate Up\nCREATE TABLE a (x);\n-- +migrate Down\nDROP TABLE a;\n")
	if got != "\nCREATE TABLE a (x);\n" {
		t.Errorf("extractUp = %q", got)
	}
	if got := extractUp("SELECT 1;"); got != "SELECT 1;" {
		t.Errorf("extractUp without markers = %q", got)
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}
