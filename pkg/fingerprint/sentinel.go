package fingerprint

// Sentinel values substituted for a signal's value when it cannot be
// determined. Collectors return these instead of failing, which keeps the
// pipeline's "never fails" contract structural: a missing capability changes
// the fingerprint input, not the control flow.
const (
	// NotSupported marks a capability the client platform does not implement.
	NotSupported = "not supported"

	// Unknown marks a value the client did not report.
	Unknown = "unknown"

	// NotAvailable marks a lookup that failed, timed out, or panicked.
	NotAvailable = "not available"

	// PermissionDenied marks a capability the client refused access to.
	PermissionDenied = "permission denied"
)
