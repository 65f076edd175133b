// Package l10n is a lazy, asynchronous localization engine.
//
// Translations are resolved per (resource identity, key, locale). Bundles are
// loaded in the background at most once per identity and locale, walked
// through locale parents (fr-FR, fr, root) and through the identity's type
// hierarchy, and cached until an unexpected failure evicts them.
//
// Packages:
//   - core/i18n: Localizer, Value and Proxy
//   - core/loader: loader chain, formats and flattening
//   - core/locale: locale parsing, parent chains and locale sources
//   - core/resource: identities and hierarchy walking
//   - core/cache: insert-if-absent entry store
//   - integration/...: embedded, remote, S3, Redis and PostgreSQL loaders
//   - middleware: request locale negotiation for net/http
package l10n
