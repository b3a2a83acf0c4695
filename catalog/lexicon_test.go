package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLexicon() *Lexicon {
	lex := NewLexicon()
	lex.Insert("zebra", []string{"noun"})
	lex.Insert("run", []string{"noun", "verb"})
	lex.Insert("quickly", []string{"adverb"})
	return lex
}

func TestLexiconCategories(t *testing.T) {
	lex := testLexicon()

	cats, err := lex.Categories("run")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun", "verb"}, cats)
}

func TestLexiconCategoriesUnknownWord(t *testing.T) {
	lex := testLexicon()

	_, err := lex.Categories("missing")
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestLexiconInsertDedupesCategories(t *testing.T) {
	lex := NewLexicon()
	lex.Insert("set", []string{"noun", "verb", "noun"})

	cats, err := lex.Categories("set")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun", "verb"}, cats)
}

func TestLexiconMembersInsertionOrder(t *testing.T) {
	lex := testLexicon()

	// zebra was inserted before run, alphabetical order must not apply
	assert.Equal(t, []string{"zebra", "run"}, lex.Members("noun"))
	assert.Equal(t, []string{"run"}, lex.Members("verb"))
}

func TestLexiconMembersAny(t *testing.T) {
	lex := testLexicon()

	assert.Equal(t, []string{"zebra", "run", "quickly"}, lex.Members("any"))
}

func TestLexiconOverwriteKeepsPosition(t *testing.T) {
	lex := testLexicon()
	lex.Insert("zebra", []string{"noun", "adjective"})

	assert.Equal(t, 3, lex.Len())
	assert.Equal(t, []string{"zebra", "run"}, lex.Members("noun"))
	assert.Equal(t, []string{"zebra"}, lex.Members("adjective"))
}

func TestLexiconFilterView(t *testing.T) {
	lex := testLexicon()

	short := lex.Filter(Filters["shorter_than_8"], false)

	assert.Equal(t, []string{"zebra", "run", "quickly"}, short.Words())
	// Receiver untouched, version unchanged
	assert.Equal(t, 3, lex.Len())
	assert.Equal(t, uint64(0), lex.Version())
}

func TestLexiconFilterCommit(t *testing.T) {
	lex := testLexicon()

	lex.Filter(Filters["longer_than_3"], true)

	assert.Equal(t, []string{"zebra", "quickly"}, lex.Words())
	assert.Equal(t, uint64(1), lex.Version())

	_, err := lex.Categories("run")
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestNamedFilters(t *testing.T) {
	assert.True(t, Filters["shorter_than_10"]("wordlist"))
	assert.False(t, Filters["shorter_than_10"]("wordlistwordlist"))
	assert.True(t, Filters["alpha_only"]("abc"))
	assert.False(t, Filters["alpha_only"]("ab1"))
	assert.False(t, Filters["alpha_only"](""))
	assert.True(t, Filters["ascii_only"]("plain"))
	assert.False(t, Filters["ascii_only"]("naïve"))
}

func TestLexiconCounts(t *testing.T) {
	lex := testLexicon()

	counts := lex.Counts(nil)

	assert.Equal(t, 2, counts["noun"])
	assert.Equal(t, 1, counts["verb"])
	assert.Equal(t, 1, counts["adverb"])
	assert.Equal(t, 0, counts["adjective"])
	assert.Equal(t, 3, counts["any"])
}

func TestLexiconCountsSubcatalog(t *testing.T) {
	lex := testLexicon()
	sub := lex.Filter(Filters["longer_than_3"], false)

	counts := lex.Counts(sub)

	assert.Equal(t, 1, counts["noun"])
	assert.Equal(t, 0, counts["verb"])
	assert.Equal(t, 2, counts["any"])
}

func TestLexiconAbsorbCharset(t *testing.T) {
	lex := NewLexicon()
	lex.AbsorbCharset(NewCharset())

	// 26 + 26 + 32 + 10 single-character words
	assert.Equal(t, 94, lex.Len())

	cats, err := lex.Categories("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"lower", "anyc", "letter"}, cats)

	cats, err = lex.Categories("7")
	require.NoError(t, err)
	assert.Equal(t, []string{"digit", "anyc"}, cats)

	assert.Len(t, lex.Members("anyc"), 94)
	assert.Len(t, lex.Members("letter"), 52)
}

func TestLexiconWordsBeforeAbsorbedChars(t *testing.T) {
	lex := testLexicon()
	lex.AbsorbCharset(NewCharset())

	words := lex.Words()
	assert.Equal(t, "zebra", words[0])
	assert.Equal(t, "a", words[3])
	assert.Equal(t, 97, lex.Len())
}
