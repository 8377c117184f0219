// Package plog provides the structured-logging sink shared by this
// module's packages. It is a thin wrapper over logr.Logger so that
// callers embedding this library can route its diagnostics into
// whatever logging backend they already use, without this module
// picking one for them.
package plog

import "github.com/go-logr/logr"

var base = logr.Discard()

// SetLogger installs the logger used by this module's packages for the
// remainder of the process. It is not safe to call concurrently with
// logging calls; set it once during process start-up before any table
// build or device use.
func SetLogger(l logr.Logger) {
	base = l
}

// L returns the module's current logger.
func L() logr.Logger {
	return base
}
