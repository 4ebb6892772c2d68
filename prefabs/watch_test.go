package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want ChangeKind
	}{
		{"prefabs/controller.yaml", ChangeController},
		{"prefabs/levels/slopes.yaml", ChangeLevel},
		{"prefabs/levels/slopes.YML", ChangeLevel},
		{"prefabs/scripts/ease_out.tengo", ChangeScript},
		{"prefabs/notes.txt", ChangeNone},
		{"prefabs/controller.yaml~", ChangeNone},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := Classify(tc.path); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "controller.yaml")
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "controller.yaml" {
			t.Fatalf("expected controller.yaml event, got %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
