package catalog

import "errors"

// ErrUnknownWord is returned when a word's categories are requested but the
// word isn't present in the catalog.
var ErrUnknownWord = errors.New("word not present in catalog")
