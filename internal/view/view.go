// Package view turns a search state into an abstract frame of styled
// lines. Rendering is pure; writing the frame to a terminal is the term
// package's job.
package view

import (
	"github.com/mattn/go-runewidth"

	"github.com/awidegreen/selecta/internal/search"
	"github.com/awidegreen/selecta/internal/text"
)

// Frame is one rendered frame: the search line followed by exactly
// VisibleChoices match lines, plus the cursor's column on the search line.
type Frame struct {
	Lines        []text.StyledText
	CursorColumn int
}

// Render projects st into a Frame. The current match is shown in reverse
// video, but only when the cursor actually sits within the filtered
// matches; a cursor past the end highlights nothing. Missing match lines
// are padded with empty text so the frame height is constant.
func Render(st search.State) Frame {
	searchLine := text.Plain("> " + st.Query())
	matches := st.Matches()

	visible := st.Config().VisibleChoices
	lines := make([]text.StyledText, 0, 1+visible)
	lines = append(lines, searchLine)
	for i := 0; i < visible; i++ {
		switch {
		case i >= len(matches):
			lines = append(lines, text.StyledText{})
		case i == st.Index():
			lines = append(lines, text.Inverted(matches[i]))
		default:
			lines = append(lines, text.Plain(matches[i]))
		}
	}

	return Frame{
		Lines:        lines,
		CursorColumn: runewidth.StringWidth(searchLine.Plain()),
	}
}
