package mask

// Pattern mask grammar: a mask is a space-separated sequence of class
// tokens, one token per output position

import "strings"

// Character class tokens every catalog understands. Grammatical category
// tokens (noun, verb, ...) are free-form and only checked at resolution.
const (
	Lower   = "lower"
	Upper   = "upper"
	Punc    = "punc"
	Digit   = "digit"
	Letter  = "letter"
	AnyChar = "anyc"
	Any     = "any"
)

// Mask is an ordered sequence of class tokens. Order is significant, it
// defines the output position of each class.
type Mask []string

// Parse splits a mask string into its tokens. Token legality isn't checked
// here, unknown tokens surface later as resolution errors.
func Parse(s string) Mask {
	return Mask(strings.Split(s, " "))
}

func (m Mask) String() string {
	return strings.Join(m, " ")
}

// FromTemplate converts a hashcat-style template ("?u?l?d?s") to a Mask.
// Any literal text before the first '?' is discarded, matching hashcat
// semantics where fixed text may precede the class codes.
func FromTemplate(template string) Mask {
	codes := strings.Split(template, "?")[1:]

	m := make(Mask, 0, len(codes))
	for _, code := range codes {
		switch code {
		case "u":
			m = append(m, Upper)
		case "l":
			m = append(m, Lower)
		case "d":
			m = append(m, Digit)
		case "s":
			m = append(m, Punc)
		default:
			m = append(m, AnyChar)
		}
	}

	return m
}
