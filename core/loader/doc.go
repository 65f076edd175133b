// Package loader defines the contract for pluggable translation sources and
// the Chain that coordinates them.
//
// A Loader fetches backing data for exactly one (resource, locale) pair. The
// Chain owns fallback: for each tag in locale.Parents it asks every loader
// whose predicate accepts the resource origin, in registration order, and the
// first map returned wins.
//
//	chain, err := loader.NewChain(
//		loader.WithLoader(loader.Origins("app"), embeddedLoader, loader.Options{BasePath: "i18n"}),
//		loader.WithLoader(loader.Any(), remoteLoader, loader.Options{}),
//		loader.WithLogger(log),
//	)
//
//	m, err := chain.TryLoad(ctx, id, language.MustParse("fr-FR"))
//	switch {
//	case err == nil:
//		// use m
//	case errors.Is(err, loader.ErrNotFound):
//		// nothing anywhere; safe to remember
//	default:
//		// some loader failed; retry later
//	}
//
// # Error Taxonomy
//
//   - ErrNotFound: expected absence, the chain continues silently
//   - ErrMalformed: data exists but cannot be decoded; an unexpected failure
//   - anything else, including panics: logged with the loader name, the
//     chain continues, and the final result carries ErrLoadFailed
//
// # Backing Formats
//
// Format.Parse decodes JSON (default), TOML or YAML and flattens the result:
// nested objects become composite keys joined by ":" and string arrays become
// one value joined by "\n".
package loader
