// Package page provides the host-object side of load-readiness testing: a
// Page base type that carries loadable state, describes where it expects to
// live through a URI-template matcher, and delegates all actual browser work
// to an abstract Driver.
//
// Page satisfies both loadable.Host and loadable.Viewable, so a hierarchy
// rooted in Page gets the built-in display check for free. Embed it in
// concrete page types and register their readiness checks on a
// loadable.Registry:
//
//	login, _ := page.New("login", driver,
//	    page.WithURLTemplate("https://example.com/login{?next}"),
//	    page.WithRootSelector("#login-form"),
//	)
//
// Page definitions can also live in a YAML catalog shared by a whole suite:
//
//	pages:
//	  login:
//	    url: https://example.com/login{?next}
//	    root: "#login-form"
//
//	catalog, _ := page.LoadCatalog("pages.yaml")
//	login, _ := catalog.New("login", driver)
//
// The PAGEKIT_DEFAULT_VALIDATION environment variable (default true) decides
// whether registries built with RegistryFromEnv seed the display check on
// root types.
package page
