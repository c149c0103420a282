package tapec

import "fmt"

// Location is a single point in source text.
type Location struct {
	Line   int
	Column int
	Cursor int
}

// Span is a half-open range between two Locations.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a Span from two Locations.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
		}
		return fmt.Sprintf("%d:%d..%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d..%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
