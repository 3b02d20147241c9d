package lz4p

import (
	"errors"
	"fmt"

	"github.com/customerio/lz4p/blocks"
)

// Kind classifies decode failures.
type Kind int

const (
	// MalformedHeader means the magic tag did not match.
	MalformedHeader Kind = iota + 1

	// TruncatedInput means the header or the block size table could not be
	// buffered.
	TruncatedInput

	// InputOverrun means the body of a block could not be buffered.
	InputOverrun

	// BlockDecodeError means the codec rejected a block, or the block did not
	// have the declared length.
	BlockDecodeError
)

var (
	ErrMalformedHeader = errors.New("lz4p: malformed header")
	ErrTruncatedInput  = errors.New("lz4p: truncated input")
	ErrBlockDecode     = errors.New("lz4p: block decode error")

	// ErrInputOverrun matches every failure caused by input that ran out,
	// including TruncatedInput errors.
	ErrInputOverrun = blocks.ErrInputOverrun

	// ErrShortOutput is the cause of a BlockDecodeError raised when the
	// output buffer cannot hold another full block.
	ErrShortOutput = errors.New("output buffer too small")

	// ErrLengthMismatch is the cause of a BlockDecodeError raised when the
	// codec consumed a different number of bytes than the table declared.
	ErrLengthMismatch = errors.New("compressed length mismatch")

	// ErrSizeMismatch is the cause of a BlockDecodeError raised when the
	// decoded length differs from the original size in the header.
	ErrSizeMismatch = errors.New("decoded size mismatch")
)

var kindNames = map[Kind]string{
	MalformedHeader:  "MalformedHeader",
	TruncatedInput:   "TruncatedInput",
	InputOverrun:     "InputOverrun",
	BlockDecodeError: "BlockDecodeError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case MalformedHeader:
		return ErrMalformedHeader
	case TruncatedInput:
		return ErrTruncatedInput
	case InputOverrun:
		return ErrInputOverrun
	case BlockDecodeError:
		return ErrBlockDecode
	}

	return nil
}

// Error is returned for every failed decode.
type Error struct {
	Kind Kind

	// Block is the index of the offending block, or -1 when the failure
	// happened before the first block.
	Block int

	// Want and Got carry the expected and actual lengths when the failure
	// is a length disagreement. Both are zero otherwise.
	Want int64
	Got  int64

	Err error
}

func (e *Error) Error() string {
	msg := "lz4p: " + e.Kind.String()

	if e.Block >= 0 {
		msg += fmt.Sprintf(" in block %d", e.Block)
	}

	if e.Want != 0 || e.Got != 0 {
		msg += fmt.Sprintf(" (want %d, got %d)", e.Want, e.Got)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
