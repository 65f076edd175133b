package locale

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the supported tag that best matches the
// Accept-Language header, honoring quality values. The first supported tag is
// returned when the header is empty, malformed, or matches nothing.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Supported: [pl, en, de]
// Returns: en
func ParseAcceptLanguage(header string, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return Root
	}
	if header == "" {
		return supported[0]
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}

	return Match(supported, desired...)
}

// Match returns the supported tag closest to the desired tags, or the first
// supported tag when there is no reasonable match.
func Match(supported []language.Tag, desired ...language.Tag) language.Tag {
	if len(supported) == 0 {
		return Root
	}
	if len(desired) == 0 {
		return supported[0]
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}
