// Package logger builds slog loggers with the portal's conventions: JSON in
// production, text in development, level and format configurable from the
// environment. The session manager and access facade accept the resulting
// *slog.Logger directly.
package logger
