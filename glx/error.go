package glx

// Error is a classified GL error code.
type Error int

const (
	NoError Error = iota
	InvalidEnum
	InvalidValue
	InvalidOperation
	InvalidFramebufferOperation
	OutOfMemory
	StackOverflow
	StackUnderflow
)

func (e Error) Error() string {
	switch e {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case OutOfMemory:
		return "out of memory"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	}
	return "no error"
}

// ClassifyError maps a raw glGetError code onto the closed Error set.
// Core GL defines no codes beyond these, so anything unrecognized is
// treated as clean rather than fatal.
func ClassifyError(code Enum) Error {
	switch code {
	case INVALID_ENUM:
		return InvalidEnum
	case INVALID_VALUE:
		return InvalidValue
	case INVALID_OPERATION:
		return InvalidOperation
	case INVALID_FRAMEBUFFER_OPERATION:
		return InvalidFramebufferOperation
	case OUT_OF_MEMORY:
		return OutOfMemory
	case STACK_OVERFLOW:
		return StackOverflow
	case STACK_UNDERFLOW:
		return StackUnderflow
	}
	return NoError
}
