package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Page records the page name under the key "page".
func Page(name string) slog.Attr {
	return slog.String("page", name)
}

// PageID records the page instance identifier under the key "page_id".
func PageID(id string) slog.Attr {
	return slog.String("page_id", id)
}

// Suite records the suite name under the key "suite".
func Suite(name string) slog.Attr {
	return slog.String("suite", name)
}

// Location records an observed address under the key "location".
func Location(url string) slog.Attr {
	return slog.String("location", url)
}

// Check records the index of a readiness check under the key "check".
func Check(index int) slog.Attr {
	return slog.Int("check", index)
}

// Attempt records the polling attempt count under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
