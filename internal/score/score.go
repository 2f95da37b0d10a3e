// Package score implements the fuzzy-match scoring used to rank choices
// against the user's query.
package score

import "strings"

// Score rates how well query matches choice. The result is 0 when the
// query's characters never appear in order within the choice, and grows as
// the tightest matching window shrinks and as the choice itself gets
// shorter. An empty query matches everything equally at 1.0. Matching is
// case-insensitive.
func Score(choice, query string) float64 {
	if query == "" {
		return 1.0
	}
	if choice == "" {
		return 0.0
	}

	c := []rune(strings.ToLower(choice))
	q := []rune(strings.ToLower(query))

	window := shortestWindow(c, q)
	if window == 0 {
		return 0.0
	}
	return float64(len(q)) / float64(window) / float64(len(c))
}

// shortestWindow returns the length of the shortest contiguous run of
// choice that contains query, in order, as a subsequence. It returns 0
// when no such run exists.
func shortestWindow(choice, query []rune) int {
	best := 0
	for i, r := range choice {
		if r != query[0] {
			continue
		}
		end := endOfMatch(choice, query, i)
		if end < 0 {
			continue
		}
		if length := end - i + 1; best == 0 || length < best {
			best = length
		}
	}
	return best
}

// endOfMatch matches query[1:] strictly left to right in choice, starting
// after position start. It returns the index of the last matched rune, or
// -1 when some query rune is never found.
func endOfMatch(choice, query []rune, start int) int {
	last := start
	for _, qr := range query[1:] {
		next := -1
		for j := last + 1; j < len(choice); j++ {
			if choice[j] == qr {
				next = j
				break
			}
		}
		if next < 0 {
			return -1
		}
		last = next
	}
	return last
}
