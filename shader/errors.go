package shader

import "fmt"

// UnsupportedStageError reports a stage kind the backend cannot compile,
// e.g. tessellation stages on hardware without them.
type UnsupportedStageError struct {
	Kind StageKind
}

func (e *UnsupportedStageError) Error() string {
	return fmt.Sprintf("unsupported shader stage: %s", e.Kind)
}

// CompileError reports a stage that failed to compile, with the driver's
// info log relayed verbatim.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s stage failed to compile: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program failed to link: %s", e.Log)
}

// InactiveUniformError reports a uniform lookup for a name the linked
// program does not expose, either because it was never declared or because
// the compiler eliminated it. The program itself remains usable.
type InactiveUniformError struct {
	Name string
}

func (e *InactiveUniformError) Error() string {
	return fmt.Sprintf("uniform %q is inactive or absent", e.Name)
}
