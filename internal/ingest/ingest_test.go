package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChoicesTrimsWhitespace(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader("  one  \n\ttwo\nthree\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, choices)
}

func TestReadChoicesSkipsBlankLines(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader("one\n\n   \ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, choices)
}

func TestReadChoicesHandlesCRLF(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader("one\r\ntwo\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, choices)
}

func TestReadChoicesDropsInvalidBytes(t *testing.T) {
	// Ill-formed UTF-8 is dropped, not surfaced as an error.
	choices, err := ReadChoices(strings.NewReader("fo\xffo\nb\xc3(ar\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "b(ar"}, choices)
}

func TestReadChoicesKeepsValidUnicode(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader("héllo\n日本語\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"héllo", "日本語"}, choices)
}

func TestReadChoicesMissingFinalNewline(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader("one\ntwo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, choices)
}

func TestReadChoicesEmptyInput(t *testing.T) {
	choices, err := ReadChoices(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, choices)
}
