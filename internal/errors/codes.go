package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// Process exit statuses used by the command line entry point
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBadInput = 2
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitStatus returns the process exit status for the code. Lookups of
// unknown subjects and bad flags are user errors; everything else is a
// failure talking to the upstream service or inside the tool.
func (c Code) ExitStatus() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeNotFound, CodeInvalidArgument:
		return ExitBadInput
	default:
		return ExitFailure
	}
}
