package syntax

// Cursor walks a fully scanned item sequence. It only moves forward.
type Cursor struct {
	items []Item
	pos   int
}

// NewCursor returns a cursor at the first of items. If items does not end
// with an _EOF item, one is supplied for reads past the end.
func NewCursor(items []Item) *Cursor {
	if n := len(items); n == 0 || items[n-1].Tok != _EOF {
		var end Pos
		if n > 0 {
			end = items[n-1].Pos
		}
		items = append(items[:n:n], Item{Tok: _EOF, Pos: end})
	}
	return &Cursor{items: items}
}

// Peek returns the current item without consuming it.
func (c *Cursor) Peek() Item {
	return c.PeekAt(0)
}

// PeekAt returns the item n positions ahead of the current one.
func (c *Cursor) PeekAt(n int) Item {
	if i := c.pos + n; i < len(c.items) {
		return c.items[i]
	}
	return c.items[len(c.items)-1]
}

// Advance returns the current item and moves past it. At the end of input
// it keeps returning the _EOF item.
func (c *Cursor) Advance() Item {
	it := c.Peek()
	if c.pos < len(c.items)-1 {
		c.pos++
	}
	return it
}

// Offset returns the index of the current item.
func (c *Cursor) Offset() int {
	return c.pos
}
