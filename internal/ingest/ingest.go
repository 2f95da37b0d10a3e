// Package ingest reads candidate lines from an input stream and cleans
// them up for searching.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// maxLineBytes caps a single candidate line.
const maxLineBytes = 1024 * 1024

// repair replaces ill-formed UTF-8 with the replacement rune and then
// drops those runes, so unrecoverable byte sequences vanish instead of
// failing the whole read.
var repair = transform.Chain(
	runes.ReplaceIllFormed(),
	runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
)

// ReadChoices reads one candidate per line from r, trimming surrounding
// whitespace and dropping lines that end up empty.
func ReadChoices(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, repair))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var choices []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		choices = append(choices, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading choices: %w", err)
	}
	return choices, nil
}
