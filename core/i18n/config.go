package i18n

import "time"

// Config holds the environment-driven settings of a Localizer.
// Load it with config.Load and apply it with WithConfig.
type Config struct {
	// EchoKeyWhileLoading selects the EchoKey placeholder policy instead of Ellipsis.
	EchoKeyWhileLoading bool `env:"L10N_ECHO_KEY_WHILE_LOADING" envDefault:"false"`
	// TraceEnabled turns on diagnostic trace events.
	TraceEnabled bool `env:"L10N_TRACE_ENABLED" envDefault:"false"`
	// DefaultLocale is used when a request carries no locale of its own.
	DefaultLocale string `env:"L10N_DEFAULT_LOCALE" envDefault:"en"`
	// LoadTimeout bounds one full loader chain walk. Zero disables the bound.
	LoadTimeout time.Duration `env:"L10N_LOAD_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		LoadTimeout:   30 * time.Second,
	}
}
