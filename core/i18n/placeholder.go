package i18n

// LoadingMarker is the fixed text shown by the Ellipsis placeholder policy.
const LoadingMarker = "..."

// Placeholder decides what a lookup returns while backing data is still
// loading. It must be cheap and must not block.
type Placeholder func(key string) Text

// EchoKey renders the key itself, styled like a missing translation, so
// unfinished screens show which strings are pending.
func EchoKey(key string) Text {
	return Text{Key: key, Value: key, NotFound: true, Pending: true}
}

// Ellipsis renders LoadingMarker and does not flag the key as missing.
func Ellipsis(key string) Text {
	return Text{Key: key, Value: LoadingMarker, Pending: true}
}

// placeholderFor maps the boolean configuration flag to a built-in policy.
func placeholderFor(echoKey bool) Placeholder {
	if echoKey {
		return EchoKey
	}
	return Ellipsis
}
