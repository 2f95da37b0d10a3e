// Package text models one renderable terminal line as an ordered sequence
// of components: literal spans, style directives, and color directives.
// The representation commits to no particular escape encoding; translating
// components to terminal bytes is the term package's job.
package text

import "strings"

// Color names an entry of the basic ANSI palette.
type Color int

// Palette entries, in ANSI order.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default
)

// Style is a display attribute directive.
type Style int

// Style directives.
const (
	// Inverse enables reverse video for the components that follow.
	Inverse Style = iota
	// Reset clears all active attributes and colors.
	Reset
)

// Component is one element of a StyledText. Exactly three kinds exist:
// Span, Style, and ColorPair.
type Component interface {
	component()
}

// Span is a literal run of text.
type Span string

// ColorPair sets the foreground and background colors together.
type ColorPair struct {
	Fg Color
	Bg Color
}

func (Span) component()      {}
func (Style) component()     {}
func (ColorPair) component() {}

// StyledText is an immutable ordered sequence of components describing one
// renderable line. The zero value is an empty line.
type StyledText struct {
	components []Component
}

// New builds a StyledText from the given components.
func New(components ...Component) StyledText {
	return StyledText{components: components}
}

// Plain wraps s as a single literal span.
func Plain(s string) StyledText {
	return New(Span(s))
}

// Inverted wraps s in reverse video, resetting afterwards.
func Inverted(s string) StyledText {
	return New(Inverse, Span(s), Reset)
}

// Components returns the component sequence. Callers must not modify it.
func (t StyledText) Components() []Component {
	return t.components
}

// Append returns a new StyledText holding t's components followed by
// other's. Neither input is mutated.
func (t StyledText) Append(other StyledText) StyledText {
	merged := make([]Component, 0, len(t.components)+len(other.components))
	merged = append(merged, t.components...)
	merged = append(merged, other.components...)
	return StyledText{components: merged}
}

// Plain returns the concatenated literal spans, ignoring directives.
func (t StyledText) Plain() string {
	var b strings.Builder
	for _, c := range t.components {
		if span, isSpan := c.(Span); isSpan {
			b.WriteString(string(span))
		}
	}
	return b.String()
}

// Equal reports component-wise structural equality.
func (t StyledText) Equal(other StyledText) bool {
	if len(t.components) != len(other.components) {
		return false
	}
	for i, c := range t.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}
