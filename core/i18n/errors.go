package i18n

import "errors"

var (
	// ErrNilChain is returned when a Localizer is created without a loader chain.
	ErrNilChain = errors.New("i18n: loader chain is required")

	// ErrInvalidLocale is returned when the configured default locale cannot be parsed.
	ErrInvalidLocale = errors.New("i18n: invalid default locale")
)
