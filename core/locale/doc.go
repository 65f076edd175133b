// Package locale computes locale fallback chains and reports the locale a
// caller should be served in.
//
// Tags are golang.org/x/text/language values. Their parent relation drives
// fallback: every chain walks from the requested tag to progressively less
// specific tags and ends at Root, which is its own parent.
//
//	tag := locale.MustParse("fr-FR")
//	for t := range locale.Parents(tag) {
//		fmt.Println(t) // fr-FR, fr, und
//	}
//
// # Locale Sources
//
// A Source answers "which locale now?". Static always reports one tag,
// Current is a process-wide value the application updates at runtime, and
// FromContextOr prefers a request-scoped tag stored with ToContext:
//
//	current := locale.NewCurrent(language.English)
//	src := locale.FromContextOr(current)
//
//	ctx := locale.ToContext(r.Context(), language.French)
//	src.Locale(ctx) // fr
//
// # Negotiation
//
// ParseAcceptLanguage picks the best supported tag for an Accept-Language
// header using quality values and CLDR matching.
package locale
