package utils

import (
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	base := t.TempDir()

	got, err := ResolvePath(base, "extra/../limits.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(base, "limits.yaml"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	abs := filepath.Join(base, "abs.yaml")
	if got, _ := ResolvePath("/elsewhere", abs); got != abs {
		t.Fatalf("absolute path must be kept, got %s", got)
	}

	if _, err := ResolvePath(base, "  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestPathContained(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		target string
		want   bool
	}{
		{filepath.Join(base, "a.yaml"), true},
		{filepath.Join(base, "nested", "b.yaml"), true},
		{filepath.Join(base, "..dots.yaml"), true},
		{filepath.Join(base, "..", "outside.yaml"), false},
		{filepath.Dir(base), false},
	}

	for _, tt := range tests {
		got, err := PathContained(base, tt.target)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.target, err)
		}
		if got != tt.want {
			t.Fatalf("PathContained(%s) = %v, want %v", tt.target, got, tt.want)
		}
	}
}
