package ir

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec.md §7. A parser failure is
// always reported as one of these, wrapped in a *ParseError that attaches
// the opcode and decoded arguments for diagnostics.
var (
	ErrMissingOperand        = errors.New("missing-operand")
	ErrUnsupportedOpcode     = errors.New("unsupported-opcode")
	ErrBadBlockCount         = errors.New("bad-block-count")
	ErrGEPBadType            = errors.New("gep-bad-type")
	ErrGEPBadIndex           = errors.New("gep-bad-index")
	ErrBadCallee             = errors.New("bad-callee")
	ErrNonFunctionCall       = errors.New("non-function-call")
	ErrMustTailUnsupported   = errors.New("must-tail-unsupported")
	ErrByValNonPointer       = errors.New("byval-non-pointer")
	ErrSwitchNonConstantCase = errors.New("switch-non-constant-case")
	ErrSwitchTypeMismatch    = errors.New("switch-type-mismatch")
	ErrAllocaArgCount        = errors.New("alloca-arg-count")
	ErrBadBlockTarget        = errors.New("bad-block-target")
)

// ParseError is the single diagnostic the builder ever produces: a
// fatal, unwind-the-whole-parse error carrying the opcode that failed,
// its decoded arguments (where available), and the underlying taxonomy
// error (spec.md §7). There is no partial function returned on failure.
type ParseError struct {
	Opcode int
	Args   []int64
	Reason error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parser error: opcode %d args %v: %s: %s", e.Opcode, e.Args, e.Reason, e.Detail)
	}
	return fmt.Sprintf("parser error: opcode %d args %v: %s", e.Opcode, e.Args, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// NewParseError builds a ParseError for the given opcode/args, matching
// the original's parser_error(iu, reason, ...) abort path.
func NewParseError(opcode int, args []int64, reason error, detailFmt string, a ...interface{}) *ParseError {
	return &ParseError{
		Opcode: opcode,
		Args:   args,
		Reason: reason,
		Detail: fmt.Sprintf(detailFmt, a...),
	}
}
