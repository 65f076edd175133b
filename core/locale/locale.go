package locale

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/language"
)

// Root is the invariant locale. It is its own parent and terminates every chain.
var Root = language.Und

// ErrInvalidTag is returned when a locale string cannot be parsed.
var ErrInvalidTag = errors.New("locale: invalid tag")

// Parse normalizes s into a language tag. Underscores are accepted as
// separators and the empty string maps to Root.
func Parse(s string) (language.Tag, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Root, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Root, fmt.Errorf("%w: %q: %v", ErrInvalidTag, s, err)
	}
	return tag, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) language.Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// IsRoot reports whether tag is the root locale.
func IsRoot(tag language.Tag) bool {
	return tag == Root
}

// Parents returns the sequence of tag followed by its progressively less
// specific ancestors, ending with Root. The sequence is finite and can be
// ranged over any number of times.
//
//	for t := range locale.Parents(language.MustParse("fr-FR")) {
//		// fr-FR, fr, und
//	}
func Parents(tag language.Tag) iter.Seq[language.Tag] {
	return func(yield func(language.Tag) bool) {
		current := tag
		for {
			if !yield(current) {
				return
			}
			parent := current.Parent()
			if parent == current {
				return
			}
			current = parent
		}
	}
}

// Chain collects Parents(tag) into a slice.
func Chain(tag language.Tag) []language.Tag {
	var chain []language.Tag
	for t := range Parents(tag) {
		chain = append(chain, t)
	}
	return chain
}

// Suffix returns the resource-name form of tag: "" for Root, the BCP 47
// string otherwise.
func Suffix(tag language.Tag) string {
	if IsRoot(tag) {
		return ""
	}
	return tag.String()
}
