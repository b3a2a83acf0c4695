package catalog

// Word catalog keyed by grammatical category

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/ranok/entro/mask"
)

// Category tokens recognized by Counts, alongside the character classes
// absorbed from a Charset.
var partsOfSpeech = []string{
	"noun", "verb", "adverb", "adjective",
	"pronoun", "conjunction", "preposition", "interjection",
}

// Filters are the named dictionary predicates selectable from the CLI.
var Filters = map[string]func(string) bool{
	"shorter_than_10": func(w string) bool { return len(w) < 10 },
	"shorter_than_8":  func(w string) bool { return len(w) < 8 },
	"longer_than_3":   func(w string) bool { return len(w) > 3 },
	"alpha_only": func(w string) bool {
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return w != ""
	},
	"ascii_only": func(w string) bool {
		for _, r := range w {
			if r >= 128 {
				return false
			}
		}
		return true
	},
}

// Lexicon maps each word to the category tokens it satisfies. Word order is
// insertion order and it matters: member lists and therefore candidate
// enumeration order follow it.
type Lexicon struct {
	order   []string
	entries map[string][]string
	version uint64
}

func NewLexicon() *Lexicon {
	return &Lexicon{entries: make(map[string][]string)}
}

// Insert adds or overwrites a word with the given categories (duplicates
// removed, order kept). An overwrite keeps the word's original position.
// Insert does not bump the catalog version, so resolver caches built before
// it may miss the new word until the next invalidation.
func (l *Lexicon) Insert(word string, categories []string) {
	deduped := make([]string, 0, len(categories))
	for _, cat := range categories {
		if !slices.Contains(deduped, cat) {
			deduped = append(deduped, cat)
		}
	}

	if _, known := l.entries[word]; !known {
		l.order = append(l.order, word)
	}
	l.entries[word] = deduped
}

// Categories returns the category tokens of a known word.
func (l *Lexicon) Categories(word string) ([]string, error) {
	cats, ok := l.entries[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ErrUnknownWord)
	}
	return cats, nil
}

// Members returns every word satisfying the token, in insertion order.
// The "any" token matches every word regardless of category.
func (l *Lexicon) Members(token string) []string {
	var members []string
	for _, word := range l.order {
		if token == mask.Any || slices.Contains(l.entries[word], token) {
			members = append(members, word)
		}
	}
	return members
}

// Filter returns the sub-catalog of words satisfying keep. With commit the
// receiver is replaced in place and its version bumped, which invalidates
// any resolver cache built on top of it.
func (l *Lexicon) Filter(keep func(string) bool, commit bool) *Lexicon {
	filtered := NewLexicon()
	for _, word := range l.order {
		if keep(word) {
			filtered.Insert(word, l.entries[word])
		}
	}

	if commit {
		l.order = filtered.order
		l.entries = filtered.entries
		l.version++
	}

	return filtered
}

// Counts tallies how many words satisfy each recognized category token,
// over sub if given, otherwise over the whole catalog. The synthetic "any"
// count is the (sub)catalog size.
func (l *Lexicon) Counts(sub *Lexicon) map[string]int {
	if sub == nil {
		sub = l
	}

	recognized := make(map[string]bool)
	counts := make(map[string]int)
	for _, tok := range CountTokens() {
		recognized[tok] = true
		counts[tok] = 0
	}

	for _, word := range sub.order {
		for _, cat := range sub.entries[word] {
			if recognized[cat] {
				counts[cat]++
			}
		}
	}
	counts[mask.Any] = sub.Len()

	return counts
}

// CountTokens reports the category tokens Counts tallies, in display order.
func CountTokens() []string {
	tokens := make([]string, 0, len(partsOfSpeech)+6)
	tokens = append(tokens, partsOfSpeech...)
	tokens = append(tokens, mask.AnyChar, mask.Punc, mask.Digit, mask.Lower, mask.Upper, mask.Letter)
	return tokens
}

// AbsorbCharset inserts every base-class character as a single-rune word so
// character and word tokens resolve uniformly against one catalog. Each
// character is tagged with its source class plus anyc, and letter when the
// source class is lower or upper.
func (l *Lexicon) AbsorbCharset(cs *Charset) {
	for _, tok := range cs.SeedTokens() {
		cats := []string{tok, mask.AnyChar}
		if tok == mask.Lower || tok == mask.Upper {
			cats = append(cats, mask.Letter)
		}
		for _, ch := range cs.Members(tok) {
			l.Insert(ch, cats)
		}
	}
}

// Words returns the catalog's words in insertion order.
func (l *Lexicon) Words() []string {
	return slices.Clone(l.order)
}

func (l *Lexicon) Len() int {
	return len(l.order)
}

// Version counts committed mutations, resolver caches compare against it.
func (l *Lexicon) Version() uint64 {
	return l.version
}
