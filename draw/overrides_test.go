// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-draw/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNameKey(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"Ana Clara Carriom", "ana clara carriom"},
		{"  Alice ", "ALICE"},
		{"ÉLODIE", "élodie"},
	}
	for _, tt := range tests {
		if NameKey(tt.a) != NameKey(tt.b) {
			t.Errorf("NameKey(%q) = %q, NameKey(%q) = %q; want equal", tt.a, NameKey(tt.a), tt.b, NameKey(tt.b))
		}
	}

	if got := CleanName("  Alice Smith\t"); got != "Alice Smith" {
		t.Errorf("CleanName kept whitespace: %q", got)
	}
}

func TestDefaultOverrides(t *testing.T) {
	o := DefaultOverrides()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Ana Clara Carriom", "Chester", true},
		{"  ANA CLARA CARRIOM  ", "Chester", true},
		{"dione cleide", "Lasanha", true},
		{"Dione", "", false},
		{"Alice", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := o.Resolve(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		o, err := LoadOverrides("")
		if err != nil {
			t.Fatalf("LoadOverrides failed: %v", err)
		}
		if len(o) != len(DefaultOverrides()) {
			t.Errorf("expected %d overrides, got %d", len(DefaultOverrides()), len(o))
		}
	})

	t.Run("file merges over defaults", func(t *testing.T) {
		path := writeFile(t, `
overrides:
  "Bob Builder": " Toolbox "
  "DIONE CLEIDE": "Panettone"
`)
		o, err := LoadOverrides(path)
		if err != nil {
			t.Fatalf("LoadOverrides failed: %v", err)
		}

		if got, _ := o.Resolve("bob builder"); got != "Toolbox" {
			t.Errorf("expected Toolbox, got %q", got)
		}
		if got, _ := o.Resolve("Dione Cleide"); got != "Panettone" {
			t.Errorf("file should replace default, got %q", got)
		}
		if got, _ := o.Resolve("Ana Clara Carriom"); got != "Chester" {
			t.Errorf("defaults should survive, got %q", got)
		}
	})

	errorCases := []struct {
		name    string
		content string
	}{
		{"bad yaml", "overrides: [unclosed"},
		{"empty item", "overrides:\n  \"Bob\": \"  \"\n"},
		{"empty name", "overrides:\n  \" \": \"Toolbox\"\n"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadOverrides(writeFile(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestFindItem(t *testing.T) {
	usage := []models.ItemUsage{
		{Item: models.Item{ID: "1", Name: "Panettone"}},
		{Item: models.Item{ID: "2", Name: "chester"}},
		{Item: models.Item{ID: "3", Name: "Chester"}},
	}

	u, ok := findItem(usage, "CHESTER")
	if !ok || u.Item.ID != "2" {
		t.Errorf("expected first case-insensitive match (id 2), got %+v %v", u, ok)
	}

	if _, ok := findItem(usage, "Lasanha"); ok {
		t.Error("expected no match for Lasanha")
	}
}
