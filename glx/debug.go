package glx

import "fmt"

// debugChecks gates per-operation error polling. Off in normal operation:
// polling glGetError stalls the driver pipeline, so it is strictly a
// diagnostic tool.
var debugChecks = false

// SetDebugChecks toggles per-operation error polling for DebugCheck.
func SetDebugChecks(on bool) {
	debugChecks = on
}

// DebugCheck runs op and, when debug checks are enabled, polls the driver
// error flag afterwards, returning the classified error tagged with what
// was being attempted. With checks disabled it is just the cost of op.
func DebugCheck(f Funcs, what string, op func()) error {
	op()
	if !debugChecks {
		return nil
	}
	if err := ClassifyError(f.GetError()); err != NoError {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
