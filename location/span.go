package location

// Span is a half-open range [Start, End) within one source document.
// For point spans (the only kind the DDL path produces today) End
// equals Start.
//
// Span is a comparable value type; the zero value means "no location"
// and is what every schema object not created directly from a DDL node
// carries.
type Span struct {
	// Source identifies the document the span points into.
	Source SourceID

	// Start is the inclusive start position of the span.
	Start Position

	// End is the exclusive end position of the span.
	// For single-point spans, End equals Start.
	End Position
}

// Point creates a single-point Span where Start == End.
func Point(source SourceID, line, column int) Span {
	pos := Position{Line: line, Column: column}
	return Span{Source: source, Start: pos, End: pos}
}

// IsZero reports whether the span carries no location information.
func (s Span) IsZero() bool {
	return s.Source.IsZero() && s.Start.IsZero() && s.End.IsZero()
}

// IsPoint reports whether the span represents a single point.
func (s Span) IsPoint() bool {
	return s.Start == s.End
}

// String returns "source:line:column" for point spans and
// "source:startLine:startCol-endLine:endCol" otherwise. A zero span
// renders as "<no location>".
func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	src := s.Source.String()
	if src == "" {
		src = "<unknown source>"
	}
	if s.IsPoint() {
		return src + ":" + s.Start.String()
	}
	return src + ":" + s.Start.String() + "-" + s.End.String()
}
