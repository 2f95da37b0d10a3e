package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainWrapsSingleSpan(t *testing.T) {
	st := Plain("hello")
	assert.Equal(t, []Component{Span("hello")}, st.Components())
	assert.Equal(t, "hello", st.Plain())
}

func TestInvertedBracketsSpan(t *testing.T) {
	st := Inverted("two")
	assert.Equal(t, []Component{Inverse, Span("two"), Reset}, st.Components())
	assert.Equal(t, "two", st.Plain())
}

func TestEqualIsStructural(t *testing.T) {
	assert.True(t, Plain("a").Equal(Plain("a")))
	assert.False(t, Plain("a").Equal(Plain("b")))
	assert.False(t, Plain("a").Equal(Inverted("a")))
	assert.True(t, StyledText{}.Equal(New()))
	assert.True(t,
		New(ColorPair{Fg: Red, Bg: Default}, Span("x")).
			Equal(New(ColorPair{Fg: Red, Bg: Default}, Span("x"))))
	assert.False(t,
		New(ColorPair{Fg: Red, Bg: Default}).
			Equal(New(ColorPair{Fg: Red, Bg: Black})))
}

func TestAppendConcatenatesWithoutMutating(t *testing.T) {
	a := Plain("a")
	b := Inverted("b")

	merged := a.Append(b)
	assert.Equal(t, []Component{Span("a"), Inverse, Span("b"), Reset}, merged.Components())

	// Inputs unchanged.
	assert.Equal(t, []Component{Span("a")}, a.Components())
	assert.Equal(t, []Component{Inverse, Span("b"), Reset}, b.Components())

	// Appending onto the merged value must not alias the first result.
	c := merged.Append(Plain("c"))
	assert.Equal(t, []Component{Span("a"), Inverse, Span("b"), Reset}, merged.Components())
	assert.Equal(t, "abc", c.Plain())
}

func TestPlainIgnoresDirectives(t *testing.T) {
	st := New(Inverse, Span("a"), ColorPair{Fg: Green, Bg: Default}, Span("b"), Reset)
	assert.Equal(t, "ab", st.Plain())
}
