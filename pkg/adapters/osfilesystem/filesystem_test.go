package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndRead(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.html")

	if err := fs.WriteFile(path, []byte("<html></html>")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("contents = %q", data)
	}
}

func TestFileSystem_ReadFile_Missing(t *testing.T) {
	fs := New()
	if _, err := fs.ReadFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok, err := fs.Exists(path); err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v", path, ok, err)
	}
	if ok, err := fs.Exists(filepath.Join(dir, "absent")); err != nil || ok {
		t.Errorf("Exists(absent) = %v, %v", ok, err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}
