package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsInputFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/data/2024/input01.txt", true},
		{"/data/2024/test01.txt", true},
		{"/data/2024/input05_2.txt", true},
		{"/data/2024/test25_1.txt", true},
		{"/data/2024/input5.txt", false},
		{"/data/2024/notes.txt", false},
		{"/data/2024/input01.md", false},
		{"/data/2024/d01.go", false},
	}

	for _, tt := range tests {
		if got := IsInputFile(tt.path); got != tt.want {
			t.Errorf("IsInputFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

type recordingHandler struct {
	events chan InputEvent
}

func (h *recordingHandler) HandleInputEvent(event InputEvent) error {
	h.events <- event
	return nil
}

func TestWatcherSeesNewInputFile(t *testing.T) {
	root := t.TempDir()
	yearDir := filepath.Join(root, "2024")
	if err := os.MkdirAll(yearDir, 0755); err != nil {
		t.Fatal(err)
	}

	handler := &recordingHandler{events: make(chan InputEvent, 8)}
	w, err := NewWatcher(handler)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := w.Watch([]string{root}); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	go w.Start()

	inputPath := filepath.Join(yearDir, "input01.txt")
	if err := os.WriteFile(inputPath, []byte("abc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Ignored: wrong naming convention.
	if err := os.WriteFile(filepath.Join(yearDir, "scratch.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-handler.events:
		if event.Path != inputPath {
			t.Errorf("event path = %q, want %q", event.Path, inputPath)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for input file event")
	}
}
