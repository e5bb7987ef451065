package skills

import (
	"strings"
	"unicode/utf8"
)

// Strategy identifies which test established that a term is present in text.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategySubstring
	StrategyWordBoundary
	StrategySpaceInsensitive
	StrategyDotInsensitive
)

func (s Strategy) String() string {
	switch s {
	case StrategySubstring:
		return "substring"
	case StrategyWordBoundary:
		return "word-boundary"
	case StrategySpaceInsensitive:
		return "space-insensitive"
	case StrategyDotInsensitive:
		return "dot-insensitive"
	default:
		return "none"
	}
}

// Target is normalized text prepared once for repeated presence tests.
type Target struct {
	text    string
	noSpace string
	noDot   string
}

// NewTarget prepares normalized text for Present.
func NewTarget(normalized string) Target {
	return Target{
		text:    normalized,
		noSpace: strings.ReplaceAll(normalized, " ", ""),
		noDot:   strings.ReplaceAll(normalized, ".", ""),
	}
}

// Text returns the normalized text the target was built from.
func (t Target) Text() string { return t.text }

type presenceCheck struct {
	strategy Strategy
	test     func(t Target, term string) bool
}

// Ordered; Present stops at the first check that succeeds.
var presenceChain = []presenceCheck{
	{StrategySubstring, func(t Target, term string) bool {
		return strings.Contains(t.text, term)
	}},
	{StrategyWordBoundary, func(t Target, term string) bool {
		return ContainsWord(t.text, term)
	}},
	{StrategySpaceInsensitive, func(t Target, term string) bool {
		return strings.Contains(t.noSpace, strings.ReplaceAll(term, " ", ""))
	}},
	{StrategyDotInsensitive, func(t Target, term string) bool {
		return strings.Contains(t.noDot, strings.ReplaceAll(term, ".", ""))
	}},
}

// Present reports whether term occurs in the target and which check found it.
func Present(t Target, term string) (Strategy, bool) {
	for _, check := range presenceChain {
		if check.test(t, term) {
			return check.strategy, true
		}
	}
	return StrategyNone, false
}

// ContainsWord reports whether term occurs in text with a word boundary on
// both sides, using the same boundary rule as a \b regex anchor: the
// characters on either side of the boundary differ in being word characters.
func ContainsWord(text, term string) bool {
	if term == "" {
		return false
	}
	for from := 0; from <= len(text)-len(term); {
		idx := strings.Index(text[from:], term)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(term)
		if WordBoundary(text, start) && WordBoundary(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return false
}

// WordBoundary reports whether a \b anchor would hold at byte offset pos:
// exactly one of the runes around pos is a letter, digit or underscore.
// Unlike regexp's \b it treats non-ASCII letters and digits as word runes.
func WordBoundary(text string, pos int) bool {
	before, after := false, false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		before = isWordRune(r)
	}
	if pos < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		after = isWordRune(r)
	}
	return before != after
}
