package scanner

// PushbackSlot holds at most one token which has been given back to a tokenizer.
// The zero value is an empty slot.
type PushbackSlot struct {
	tok  Token
	full bool
}

// Push puts a token into the slot. It panics if the slot is already occupied,
// as this would silently drop a token.
func (s *PushbackSlot) Push(tok Token) {
	if s.full {
		panic("attempt to push back a second token; lookahead is limited to one token")
	}
	s.tok, s.full = tok, true
}

// Pop takes the token out of the slot, if any.
func (s *PushbackSlot) Pop() (Token, bool) {
	if !s.full {
		return Token{}, false
	}
	tok := s.tok
	s.tok, s.full = Token{}, false
	return tok, true
}

// Peek returns the token in the slot, if any, without taking it out.
func (s *PushbackSlot) Peek() (Token, bool) {
	return s.tok, s.full
}

// Occupied is true if the slot holds a token.
func (s *PushbackSlot) Occupied() bool {
	return s.full
}
