// Package search implements the interactive search as an immutable state
// machine. Every transition takes a State by value and returns a new one;
// previous snapshots stay valid, which keeps the whole machine replayable
// in tests without a terminal.
package search

import (
	"regexp"
	"sort"

	"github.com/awidegreen/selecta/internal/config"
	"github.com/awidegreen/selecta/internal/score"
)

// trailingWord matches the last run of non-space characters plus any
// trailing spaces, for Ctrl-W word deletion.
var trailingWord = regexp.MustCompile(`[^ ]* *$`)

// State is one immutable snapshot of the interactive search: the query,
// the cursor index, the terminal done/aborted flags, and the ranked
// matches cached for the current query.
type State struct {
	cfg     *config.Config
	choices []string
	index   int
	query   string
	done    bool
	aborted bool
	matches []string
}

// Blank returns the initial state for cfg, with the configured initial
// query already applied and ranked.
func Blank(cfg *config.Config) State {
	return State{
		cfg:     cfg,
		choices: cfg.Choices,
		query:   cfg.InitialQuery,
		matches: rank(cfg.Choices, cfg.InitialQuery),
	}
}

// Config returns the run configuration this state was built from.
func (s State) Config() *config.Config { return s.cfg }

// Query returns the current query string.
func (s State) Query() string { return s.query }

// Index returns the cursor position. It ranges over the visible slots,
// which are bounded by the total choice count, not the match count, so it
// may point past the end of Matches.
func (s State) Index() int { return s.index }

// Done reports whether the user confirmed a selection.
func (s State) Done() bool { return s.done }

// Aborted reports whether the user cancelled.
func (s State) Aborted() bool { return s.aborted }

// Matches returns the choices scoring above zero against the current
// query, best first. Equal scores keep their original choice order.
func (s State) Matches() []string { return s.matches }

// Down moves the cursor to the next visible slot, wrapping at the bottom.
func (s State) Down() State {
	s.index = s.step(1)
	return s
}

// Up moves the cursor to the previous visible slot, wrapping at the top.
func (s State) Up() State {
	s.index = s.step(-1)
	return s
}

// Append adds r to the end of the query.
func (s State) Append(r rune) State {
	return s.withQuery(s.query + string(r))
}

// Backspace drops the last rune of the query.
func (s State) Backspace() State {
	runes := []rune(s.query)
	if len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}
	return s.withQuery(string(runes))
}

// Clear empties the query.
func (s State) Clear() State {
	return s.withQuery("")
}

// DeleteWord removes the trailing word and any trailing spaces from the
// query.
func (s State) DeleteWord() State {
	return s.withQuery(trailingWord.ReplaceAllString(s.query, ""))
}

// Confirm marks the state done. Done states are terminal.
func (s State) Confirm() State {
	s.done = true
	return s
}

// Cancel marks the state aborted. Aborted states are terminal.
func (s State) Cancel() State {
	s.aborted = true
	return s
}

// Selection resolves the chosen candidate. There is no selection when the
// state was aborted, or when the cursor sits past the end of the filtered
// matches (the cursor wraps over the total choice count, so the two can
// diverge under a narrowing query).
func (s State) Selection() (string, bool) {
	if s.aborted || s.index >= len(s.matches) {
		return "", false
	}
	return s.matches[s.index], true
}

// withQuery replaces the query, resets the cursor, and recomputes the
// match cache. Query changes are the only thing that invalidates it.
func (s State) withQuery(query string) State {
	s.query = query
	s.index = 0
	s.matches = rank(s.choices, query)
	return s
}

// step advances the cursor by delta within the visible slots, wrapping in
// both directions. The slot count is min(VisibleChoices, len(choices)).
func (s State) step(delta int) int {
	n := s.maxVisible()
	if n == 0 {
		return 0
	}
	return ((s.index+delta)%n + n) % n
}

func (s State) maxVisible() int {
	if len(s.choices) < s.cfg.VisibleChoices {
		return len(s.choices)
	}
	return s.cfg.VisibleChoices
}

// rank filters choices to those matching query and sorts them by
// descending score. The sort is stable so equal scores keep the original
// choice order.
func rank(choices []string, query string) []string {
	type match struct {
		choice string
		score  float64
	}
	ranked := make([]match, 0, len(choices))
	for _, c := range choices {
		if v := score.Score(c, query); v > 0 {
			ranked = append(ranked, match{choice: c, score: v})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.choice
	}
	return out
}
