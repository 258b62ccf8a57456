package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(filepath.Join(tmpDir, "nonexistent")) {
		t.Error("Exists returned true for non-existent file")
	}

	path := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists returned false for existing file")
	}
}

func TestEnsureDirExisting(t *testing.T) {
	tmpDir := t.TempDir()

	if err := EnsureDir(tmpDir, false); err != nil {
		t.Errorf("EnsureDir failed for existing directory: %v", err)
	}
}

func TestEnsureDirNotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(path, true)
	if err == nil {
		t.Fatal("expected error for path that is a regular file")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("expected 'not a directory' error, got: %v", err)
	}
}

func TestEnsureDirCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(path, true); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("EnsureDir did not create directory: %v", err)
	}
}

func TestEnsureDirCreateDisallowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	err := EnsureDir(path, false)
	if err == nil {
		t.Fatal("expected error for missing directory with create disabled")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected 'does not exist' error, got: %v", err)
	}
	if Exists(path) {
		t.Error("directory was created despite create=false")
	}
}

func TestWriteTmpThenMove(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "output.txt")
	content := []byte("test content")

	err := WriteTmpThenMove(outPath, func(tmpPath string) error {
		return os.WriteFile(tmpPath, content, 0644)
	})
	if err != nil {
		t.Fatalf("WriteTmpThenMove failed: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q, want %q", got, content)
	}
	if Exists(outPath + ".tmp") {
		t.Error("tmp file still exists after successful write")
	}
}

func TestWriteTmpThenMoveError(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "output.txt")

	err := WriteTmpThenMove(outPath, func(tmpPath string) error {
		return os.ErrPermission
	})
	if err == nil {
		t.Error("WriteTmpThenMove should have failed")
	}
	if Exists(outPath + ".tmp") {
		t.Error("tmp file exists after failed write")
	}
	if Exists(outPath) {
		t.Error("output file exists after failed write")
	}
}
