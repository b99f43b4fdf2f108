package scanner

// ByteView is a read-only view over a sequence of bytes. Views created with
// Slice share the bytes of the view they are created from; creating them
// does not copy.
//
// Clients must not modify the bytes a view has been created from while the
// view is in use.
type ByteView struct {
	data []byte
}

// NewByteView creates a view over b.
func NewByteView(b []byte) ByteView {
	return ByteView{data: b[:len(b):len(b)]}
}

// ViewString creates a view over a copy of s.
func ViewString(s string) ByteView {
	return ByteView{data: []byte(s)}
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.data)
}

// At returns the byte at position i. It panics if i is out of range.
func (v ByteView) At(i int) byte {
	return v.data[i]
}

// Slice returns a sub-view of length n, starting at offset. It panics if the
// range does not lie within v.
func (v ByteView) Slice(offset, n int) ByteView {
	return ByteView{data: v.data[offset : offset+n : offset+n]}
}

// Bytes returns a copy of the bytes of v.
func (v ByteView) Bytes() []byte {
	b := make([]byte, len(v.data))
	copy(b, v.data)
	return b
}

func (v ByteView) String() string {
	return string(v.data)
}

// Equals is true if the bytes of v equal s, comparing case-sensitive.
func (v ByteView) Equals(s string) bool {
	return string(v.data) == s
}

// contextWidth is the maximum size of input snippets in error messages.
const contextWidth = 12

// Context returns a snippet of the input around a byte position.
func (v ByteView) Context(offset uint64) string {
	if offset > uint64(len(v.data)) {
		offset = uint64(len(v.data))
	}
	from := int(offset) - contextWidth/2
	if from < 0 {
		from = 0
	}
	to := from + contextWidth
	if to > len(v.data) {
		to = len(v.data)
	}
	return string(v.data[from:to])
}

// --- Cursor ----------------------------------------------------------------

// Cursor is a read position within an input view. Matchers advance the cursor
// over the bytes they recognize.
type Cursor struct {
	input ByteView
	pos   int
}

// NewCursor creates a cursor over input, positioned at pos.
func NewCursor(input ByteView, pos int) *Cursor {
	return &Cursor{input: input, pos: pos}
}

// Pos returns the byte position of the cursor.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd is true if no input is left.
func (c *Cursor) AtEnd() bool {
	return c.pos >= c.input.Len()
}

// Peek returns the byte at the cursor position without advancing. It returns
// false if no input is left.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.input.At(c.pos), true
}

// Advance moves the cursor one byte forward.
func (c *Cursor) Advance() {
	if !c.AtEnd() {
		c.pos++
	}
}

// Since returns a view of the input from a start position up to the cursor.
func (c *Cursor) Since(start int) ByteView {
	return c.input.Slice(start, c.pos-start)
}
