// Package telemetry wraps a *zap.Logger with the structured-logging calls
// dtengine's change-application pipeline makes, in the style
// stonelgh-m3's carbon ingest handler logs rule-compilation failures:
// leveled, with zap.Field context instead of formatted strings.
//
// A zero-value Logger logs nothing (its embedded *zap.Logger is nil-safe via
// NewNop), matching dtengine's teacher, which never logs at all — injecting
// a real logger is opt-in.
package telemetry
