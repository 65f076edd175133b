// Package resource describes what is being localized and in which order
// related bundles are consulted when a key is missing.
//
// An Identity is a base name plus the Origin that declares it, optionally
// with a declared Type carrying an immediate parent and interfaces:
//
//	base := resource.MustNew("App.Shared", "app")
//	page := resource.MustNew("App.Pages.Home", "app",
//		resource.WithParent(base),
//		resource.WithInterfaces(resource.MustNew("App.Layout", "ui")),
//	)
//
//	w := resource.NewWalker(resource.Ref{BaseName: "Defaults", Origin: "app"})
//	w.ChainFor(page)
//	// app/App.Pages.Home, app/App.Shared, ui/App.Layout, app/Defaults
//
// Only one hop is taken per element: the parent's own parent is not visited.
package resource
