package segmenter

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// rule wraps one compiled pattern and one literal replacement template
// (regexp2's $1-style backreferences are permitted). Its core operation is
// replaceAll, the primitive every higher layer is phrased in terms of
// (spec §4.1); replaceAllFunc, findAll and matchesAny serve the stages that
// need the matches themselves.
type rule struct {
	re   *regexp2.Regexp
	repl string
}

func mustRule(pattern, replacement string, opts regexp2.RegexOptions) *rule {
	r, err := newRule(pattern, replacement, opts)
	if err != nil {
		panic(err)
	}
	return r
}

func newRule(pattern, replacement string, opts regexp2.RegexOptions) (*rule, error) {
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("segmenter: rule %q failed to compile: %w", pattern, err)
	}
	re.MatchTimeout = 0
	return &rule{re: re, repl: replacement}, nil
}

// replaceAll performs a global non-overlapping left-to-right replacement.
func (r *rule) replaceAll(text string) string {
	out, err := r.re.Replace(text, r.repl, -1, -1)
	if err != nil {
		// Replace only fails on a pattern-level error (e.g. malformed
		// backreference in repl), which would have shown up the first
		// time this rule ever ran. Constructed rules are assumed sound.
		return text
	}
	return out
}

// replaceAllFunc is the ReplaceFunc-backed escape hatch used where the
// replacement text depends on what matched (continuous punctuation,
// conditional list-marker substitution, and similar stages).
func (r *rule) replaceAllFunc(text string, f func(m *regexp2.Match) string) string {
	out, err := r.re.ReplaceFunc(text, func(m regexp2.Match) string {
		return f(&m)
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// findAll returns every non-overlapping match of the rule's pattern, in
// left-to-right order.
func (r *rule) findAll(text string) []*regexp2.Match {
	var out []*regexp2.Match
	m, _ := r.re.FindStringMatch(text)
	for m != nil {
		out = append(out, m)
		m, _ = r.re.FindNextMatch(m)
	}
	return out
}

// matchesAny reports whether the pattern occurs anywhere in text.
func (r *rule) matchesAny(text string) bool {
	m, _ := r.re.FindStringMatch(text)
	return m != nil
}
