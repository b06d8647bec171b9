package errs

import (
	"fmt"
	"github.com/cockroachdb/errors"
)

// InvalidArgument - Custom error to inform that a required key or item was absent (nil)
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an argument was rejected
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Matches any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// Underflow - Custom error to inform that a remove or peek was made on an empty container
type Underflow struct {
	msg string
}

// Error - Used to notify that the container is empty
func (U Underflow) Error() string {
	if U.msg == "" {
		return "underflow"
	}
	return U.msg
}

// Is - Matches any Underflow regardless of message
func (U Underflow) Is(target error) bool {
	_, ok := target.(Underflow)
	return ok
}

// Unsupported - Custom error to inform that an operation is not supported by a container
type Unsupported struct {
	msg string
}

// Error - Used to notify that the operation is not supported
func (U Unsupported) Error() string {
	if U.msg == "" {
		return "operation not supported"
	}
	return U.msg
}

// Is - Matches any Unsupported regardless of message
func (U Unsupported) Is(target error) bool {
	_, ok := target.(Unsupported)
	return ok
}

// ProbingAlgorithm - Custom error to inform that a probe sequence visited every slot without finding what it
// was looking for, which only happens with a misbehaving custom hashfunc.HashAlgorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probe sequence was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Matches any ProbingAlgorithm regardless of message
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}

// NewInvalidArgument - Returns an InvalidArgument carrying a stack trace
//   - format and args describe which argument was rejected
func NewInvalidArgument(format string, args ...interface{}) error {
	return errors.WithStack(InvalidArgument{msg: fmt.Sprintf(format, args...)})
}

// NewUnderflow - Returns an Underflow carrying a stack trace
//   - container names the kind of container that was empty, e.g. "stack" or "queue"
func NewUnderflow(container string) error {
	return errors.WithStack(Underflow{msg: container + " underflow"})
}

// NewUnsupported - Returns an Unsupported carrying a stack trace
//   - operation names the operation that was attempted
func NewUnsupported(operation string) error {
	return errors.WithStack(Unsupported{msg: operation + " not currently supported"})
}

// NewProbingAlgorithm - Returns a ProbingAlgorithm carrying a stack trace
//   - tableSize is the number of slots that were probed
func NewProbingAlgorithm(tableSize int64) error {
	return errors.WithStack(ProbingAlgorithm{msg: fmt.Sprintf("probing algorithm exhausted a table of %d slots", tableSize)})
}
