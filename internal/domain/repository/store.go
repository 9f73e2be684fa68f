package repository

// StoreStatus reports which backend serves the repositories. Callers use it to
// tell "unconfigured" apart from "unreachable" without issuing I/O.
type StoreStatus interface {
	// Backend names the active backend, e.g. "sheets", "memory", "sqlite".
	Backend() string

	// Configured is false when the requested backend had no credentials and the
	// in-memory fallback is serving instead.
	Configured() bool
}
