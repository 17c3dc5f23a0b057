package utils

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.config/habitticker/habitticker.db", filepath.Join(home, ".config/habitticker/habitticker.db")},
		{"~", home},
		{"/var/lib/h.db", "/var/lib/h.db"},
		{"~other/h.db", "~other/h.db"},
		{"postgres://me@db/h", "postgres://me@db/h"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
