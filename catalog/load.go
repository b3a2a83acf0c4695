package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary file schema: {"word": {"definitions": [{"part_of_speech": "noun"}, ...]}, ...}

type definition struct {
	PartOfSpeech string `json:"part_of_speech"`
}

type dictEntry struct {
	Definitions []definition `json:"definitions"`
}

// Load reads a JSON dictionary into a Lexicon. The decoder walks the
// top-level object token by token instead of unmarshalling into a map, so
// the file's word order becomes the catalog's insertion order and
// enumeration stays deterministic across runs.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("dictionary %s: expected a top-level object", path)
	}

	lex := NewLexicon()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
		}
		word, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("dictionary %s: unexpected key token %v", path, keyTok)
		}

		var entry dictEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("dictionary %s: word %q: %w", path, word, err)
		}

		cats := make([]string, 0, len(entry.Definitions))
		for _, def := range entry.Definitions {
			cats = append(cats, def.PartOfSpeech)
		}
		lex.Insert(word, cats)
	}

	return lex, nil
}
