package stage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestControllerBounds(t *testing.T) {
	c := New()
	if c.Current() != 0 || !c.AtFirst() {
		t.Fatalf("initial stage = %d, want 0", c.Current())
	}
	c.Previous()
	if c.Current() != 0 {
		t.Fatalf("Previous at 0 moved to %d", c.Current())
	}

	for want := 1; want <= 3; want++ {
		c.Next()
		if c.Current() != want {
			t.Fatalf("Next = %d, want %d", c.Current(), want)
		}
	}
	c.Next()
	if c.Current() != 3 || !c.AtLast() {
		t.Fatalf("Next at 3 moved to %d", c.Current())
	}

	c.Previous()
	if c.Current() != 2 {
		t.Fatalf("Previous from 3 = %d, want 2", c.Current())
	}
}

func TestControllerJumpClamps(t *testing.T) {
	c := New()
	cases := []struct{ in, want int }{{2, 2}, {-4, 0}, {10, 3}, {1, 1}}
	for _, tc := range cases {
		c.Jump(tc.in)
		if c.Current() != tc.want {
			t.Fatalf("Jump(%d) = %d, want %d", tc.in, c.Current(), tc.want)
		}
	}
}

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()
	if len(c.Steps) != 4 {
		t.Fatalf("default content has %d steps", len(c.Steps))
	}
	if got := c.At(1).Subtitle; got != "Ordering the Chaos" {
		t.Fatalf("stage 1 subtitle = %q", got)
	}
	if !strings.HasPrefix(c.At(3).Title, "Stage 4") {
		t.Fatalf("stage 3 title = %q", c.At(3).Title)
	}
	if !strings.Contains(c.At(0).Description, "disconnected voids—bank ledgers") {
		t.Fatalf("stage 0 description = %q", c.At(0).Description)
	}
	if c.At(9) != c.At(0) {
		t.Fatal("out-of-range stage should fall back to the first step")
	}
}

func TestLoadContentRejectsWrongCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - title: only one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContent(path); err == nil {
		t.Fatal("expected an error for a single-step document")
	}
	if _, err := LoadContent(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
