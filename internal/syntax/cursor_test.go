package syntax

import "testing"

func TestCursor(t *testing.T) {
	items, err := LexBytes("", []byte("x = 1"))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCursor(items)

	if got := c.Peek().Lit; got != "x" {
		t.Errorf("Peek = %q, want x", got)
	}
	if got := c.PeekAt(1).Lit; got != "=" {
		t.Errorf("PeekAt(1) = %q, want =", got)
	}
	if got := c.PeekAt(10).Tok; got != _EOF {
		t.Errorf("PeekAt past end = %s, want EOF", got.Debug())
	}
	if c.Offset() != 0 {
		t.Errorf("Peek moved the cursor")
	}

	for _, want := range []string{"x", "=", "1"} {
		if got := c.Advance().Lit; got != want {
			t.Errorf("Advance = %q, want %q", got, want)
		}
	}
	for i := 0; i < 3; i++ {
		if it := c.Advance(); it.Tok != _EOF {
			t.Errorf("Advance at end = %v, want EOF", it)
		}
	}
	if c.Offset() != 3 {
		t.Errorf("Offset = %d, want 3", c.Offset())
	}
}

func TestCursorSuppliesEOF(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"nil", nil},
		{"no_eof", []Item{{Tok: _Name, Lit: "x", Pos: NewPos("", 0, 1, 1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.items)
			for range tt.items {
				c.Advance()
			}
			if it := c.Peek(); it.Tok != _EOF {
				t.Errorf("Peek at end = %v, want EOF", it)
			}
		})
	}
}

// NewCursor must not write into the caller's backing array.
func TestCursorDoesNotAlias(t *testing.T) {
	backing := make([]Item, 2, 4)
	backing[0] = Item{Tok: _Name, Lit: "a"}
	backing[1] = Item{Tok: _Name, Lit: "b"}
	spare := backing[:3]
	spare[2] = Item{Tok: _Semi, Lit: ";"}

	NewCursor(backing)
	if spare[2].Tok != _Semi {
		t.Errorf("NewCursor overwrote caller memory: %v", spare[2])
	}
}
