package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, changes chan []string) *Watcher {
	t.Helper()
	w, err := New(50*time.Millisecond, 100, 100,
		[]string{"node_modules"}, []string{"*.spec.ts"},
		func(paths []string) { changes <- paths })
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func waitForBatch(t *testing.T, changes chan []string) []string {
	t.Helper()
	select {
	case paths := <-changes:
		return paths
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change batch")
		return nil
	}
}

func TestWatcherReportsModuleChanges(t *testing.T) {
	root := t.TempDir()
	changes := make(chan []string, 4)
	w := newTestWatcher(t, changes)

	if err := w.Watch(root); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(root, "models.ts")
	if err := os.WriteFile(target, []byte("export interface User {}"), 0644); err != nil {
		t.Fatal(err)
	}

	paths := waitForBatch(t, changes)
	found := false
	for _, p := range paths {
		if p == target {
			found = true
		}
	}
	if !found {
		t.Errorf("batch %v does not contain %s", paths, target)
	}
}

func TestWatcherIgnoresNonModuleFiles(t *testing.T) {
	root := t.TempDir()
	changes := make(chan []string, 4)
	w := newTestWatcher(t, changes)

	if err := w.Watch(root); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, "styles.css"), []byte("a{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "user.spec.ts"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-changes:
		t.Errorf("unexpected batch for ignored files: %v", paths)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherBatchesRapidChanges(t *testing.T) {
	root := t.TempDir()
	changes := make(chan []string, 4)
	w := newTestWatcher(t, changes)

	if err := w.Watch(root); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.ts", "b.ts", "c.ts"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(""), 0644); err != nil {
			t.Fatal(err)
		}
	}

	paths := waitForBatch(t, changes)
	if len(paths) != 3 {
		t.Errorf("expected one batch of 3 changes, got %v", paths)
	}
}

func TestExcludeGlobs(t *testing.T) {
	w, err := New(time.Millisecond, 100, 100,
		[]string{"node_modules", ".git"}, []string{"*.d.ts"},
		func([]string) {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if !w.shouldExcludeDir("/proj/node_modules") {
		t.Error("node_modules not excluded")
	}
	if w.shouldExcludeDir("/proj/src") {
		t.Error("src wrongly excluded")
	}
	if !w.shouldExcludeFile("/proj/types.d.ts") {
		t.Error("declaration file not excluded")
	}
	if w.shouldExcludeFile("/proj/types.ts") {
		t.Error("module file wrongly excluded")
	}
}

func TestBadExcludePattern(t *testing.T) {
	if _, err := New(time.Millisecond, 100, 100, []string{"["}, nil, func([]string) {}); err == nil {
		t.Error("expected error for malformed glob")
	}
}
