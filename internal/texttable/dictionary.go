package texttable

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/text/collate"
	xlanguage "golang.org/x/text/language"
)

// Dictionary is a read-only view from original-language text to target-language text.
// The zero value is an empty dictionary.
type Dictionary struct {
	entries map[string]string
}

// Lookup returns the translation of text.
func (d Dictionary) Lookup(text string) (string, bool) {
	v, ok := d.entries[text]
	return v, ok
}

// Translate returns the translation of text, or text itself when there is none.
func (d Dictionary) Translate(text string) string {
	if v, ok := d.entries[text]; ok {
		return v
	}
	return text
}

func (d Dictionary) Len() int {
	return len(d.entries)
}

// Keys returns the original texts in collation order.
func (d Dictionary) Keys() []string {
	keys := slices.Collect(maps.Keys(d.entries))
	collate.New(xlanguage.Und).SortStrings(keys)
	return keys
}

// All iterates over the entries in no particular order.
func (d Dictionary) All() iter.Seq2[string, string] {
	return maps.All(d.entries)
}
