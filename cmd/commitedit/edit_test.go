package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergeknystautas/commitedit/internal/commit"
)

func TestLoadRecord(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "commit.json")
	if err := os.WriteFile(path, []byte(`{"node":"abc123","author":"Jane Doe","message":"fix bug"}`), 0644); err != nil {
		t.Fatalf("failed to write record: %v", err)
	}

	tests := []struct {
		name    string
		file    string
		format  string
		want    commit.Commit
		wantErr bool
	}{
		{
			name: "json file",
			file: path,
			want: commit.Commit{Node: "abc123", Author: "Jane Doe", Message: "fix bug"},
		},
		{
			name:    "missing -f flag",
			file:    "",
			wantErr: true,
		},
		{
			name:    "nonexistent file",
			file:    filepath.Join(tmpDir, "nope.json"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadRecord(tt.file, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadRecord() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("loadRecord() = %+v, want %+v", got, tt.want)
			}
		})
	}

	_, err := loadRecord(filepath.Join(tmpDir, "nope.json"), "")
	if !errors.Is(err, commit.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestWriteRecord(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "edited.json")

	c := commit.Commit{Node: "abc123", Message: "fix bug"}
	if err := writeRecord(c, out); err != nil {
		t.Fatalf("writeRecord() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	for _, want := range []string{`"node": "abc123"`, `"message": "fix bug"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s:\n%s", want, data)
		}
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("output should end with a newline")
	}
}
