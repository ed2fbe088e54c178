package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(20*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	changed := make(chan string, 1)
	if err := w.Watch(path, func(file string) {
		changed <- file
	}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case file := <-changed:
		abs, _ := filepath.Abs(path)
		if file != abs {
			t.Errorf("callback file = %q, want %q", file, abs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}
}

func TestWatcherDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(100*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	calls := make(chan string, 10)
	if err := w.Watch(path, func(file string) {
		calls <- file
	}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// A burst of writes within the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced callback")
	}
	select {
	case <-calls:
		t.Error("burst of writes should collapse into one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingFile(t *testing.T) {
	w, err := New(time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch("/nonexistent/sketch.json", func(string) {}); err == nil {
		t.Fatal("expected error watching a missing file")
	}
}
