package logger

import "log/slog"

// Attribute helpers keep field names consistent across the codebase so log
// aggregation queries do not have to account for spelling drift.

// Error returns a standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Component returns a standard component attribute identifying the subsystem
// that produced the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AccountID returns a standard account identifier attribute.
func AccountID(id string) slog.Attr {
	return slog.String("account_id", id)
}
