package page

import "errors"

var (
	// ErrNilDriver is returned when a page is constructed without a driver.
	ErrNilDriver = errors.New("driver cannot be nil")

	// ErrNoTemplate is returned by Visit when the page has no URL template
	// to expand.
	ErrNoTemplate = errors.New("page has no URL template")

	// ErrUnknownPage is returned by a catalog lookup for an undefined page.
	ErrUnknownPage = errors.New("page is not defined in the catalog")
)
