package catalog

// Fixed character class registry

import (
	"strings"

	"github.com/ranok/entro/mask"
)

// Base alphabets. Punctuation keeps ASCII order, the same 32 characters
// hashcat's ?s covers.
const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Digits      = "0123456789"
)

// Charset is the fixed character class source. Immutable after
// construction, so resolver caches over it never go stale.
type Charset struct {
	classes map[string][]string
}

// NewCharset builds the registry. letter is lowercase followed by
// uppercase; any is punc + digit + letter, in that order.
func NewCharset() *Charset {
	lower := strings.Split(Lowercase, "")
	upper := strings.Split(Uppercase, "")
	punc := strings.Split(Punctuation, "")
	digit := strings.Split(Digits, "")

	letter := make([]string, 0, len(lower)+len(upper))
	letter = append(letter, lower...)
	letter = append(letter, upper...)

	any := make([]string, 0, len(punc)+len(digit)+len(letter))
	any = append(any, punc...)
	any = append(any, digit...)
	any = append(any, letter...)

	return &Charset{classes: map[string][]string{
		mask.Lower:  lower,
		mask.Upper:  upper,
		mask.Punc:   punc,
		mask.Digit:  digit,
		mask.Letter: letter,
		mask.Any:    any,
	}}
}

// Members returns the ordered member list for a class token, or nil for
// tokens the registry doesn't know.
func (c *Charset) Members(token string) []string {
	return c.classes[token]
}

// Version is constant, the registry never mutates.
func (c *Charset) Version() uint64 {
	return 0
}

// SeedTokens reports the base classes in registration order. Used when a
// lexicon absorbs the registry's characters as single-rune words.
func (c *Charset) SeedTokens() []string {
	return []string{mask.Lower, mask.Upper, mask.Punc, mask.Digit}
}
