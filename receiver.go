package coopbus

import "github.com/coopbus/coopbus/flags"

// Receiver holds the policy shared by every service, subscription and
// client: which messages it ignores, and which handling requirements
// it declares support for.
type Receiver struct {
	Ignore   flags.Filtering
	Handling flags.Handling
}

// Accepts reports whether a message carrying f should reach this
// receiver at all.
func (r Receiver) Accepts(f flags.Filtering) bool {
	return f&r.Ignore == 0
}

// UnhandledRequirements returns the subset of h that this receiver
// has not declared support for. A non-zero result means the bus must
// intervene (by default: refuse the message) before delivering it.
func (r Receiver) UnhandledRequirements(h flags.Handling) flags.Handling {
	return h &^ r.Handling
}
