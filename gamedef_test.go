package gamedef

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("unexpected span values for %s", s)
	}
	if s.IsNull() {
		t.Errorf("expected %s not to be null", s)
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
	x := s.Extend(Span{1, 5})
	if x != (Span{1, 7}) {
		t.Errorf("expected extended span to be (1…7), is %s", x)
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected string form %q", s.String())
	}
}
