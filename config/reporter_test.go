package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReportClose_RemovesStoredDirs(t *testing.T) {
	reportFile, err := os.CreateTemp("", "test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	// Temp directories play the role of stored work dirs
	dir1, err := os.MkdirTemp("", "test-workdir1-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	dir2, err := os.MkdirTemp("", "test-workdir2-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	// Put a file inside one of them to verify recursive removal
	if err := os.WriteFile(filepath.Join(dir1, "debug.txt"), []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// Also store a regular file entry, it should NOT be removed
	tmpFile, err := os.CreateTemp("", "test-stored-file-")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	r.Store("workdir-1", dir1)
	r.Store("workdir-2", dir2)
	r.Store("result-file", tmpFile.Name())

	// Close should finalize the archive and then remove stored directories
	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	// Directories should be removed
	if _, err := os.Stat(dir1); !os.IsNotExist(err) {
		os.RemoveAll(dir1)
		t.Errorf("expected dir1 to be removed, but it still exists")
	}
	if _, err := os.Stat(dir2); !os.IsNotExist(err) {
		os.RemoveAll(dir2)
		t.Errorf("expected dir2 to be removed, but it still exists")
	}

	// Regular file should still exist
	if _, err := os.Stat(tmpFile.Name()); err != nil {
		t.Errorf("stored file should not be removed, but got error: %v", err)
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReportArchiveContents(t *testing.T) {
	reportFile, err := os.CreateTemp("", "test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	r.StoreData("config.yaml", []byte("version: 1\n"))

	srcFile := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(srcFile, []byte("version: 1\nselectors: []\n"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	if err := r.StoreCopy("inputs/catalog.yaml", srcFile); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	arc, err := zip.OpenReader(reportFile.Name())
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer arc.Close()

	want := map[string]bool{
		"MANIFEST":            false,
		"config.yaml":         false,
		"inputs/catalog.yaml": false,
	}
	for _, f := range arc.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("archive missing %q", name)
		}
	}
}

func TestReportName(t *testing.T) {
	var r *Report
	if got := r.Name(); got != "" {
		t.Errorf("nil report Name() = %q, want empty", got)
	}
}
