package main

const (
	// Success is the same as EXIT_SUCCESS in C
	Success = iota

	// BadArgs passed to cli; not our fault.
	BadArgs

	// OpenInput means the input file could not be opened.
	OpenInput

	// OpenOutput means the output file could not be opened or written.
	OpenOutput

	// StatInput means the size of the input file is unknown.
	StatInput

	// InputTooLarge means the input exceeds --max-input and was not buffered.
	InputTooLarge

	// ShortRead covers input that ended early: a short read of the input
	// file, or a container whose header, table or blocks are cut off.
	ShortRead

	// OutputTooLarge means the header announces more than --max-output bytes.
	OutputTooLarge

	// MalformedHeader means the input is not an LZ4P container.
	MalformedHeader

	// BlockDecode means a block was corrupt or had the wrong length.
	BlockDecode
)

// ExitCode is an error carrying the process exit code it maps to.
type ExitCode struct {
	Code    int
	Message string
}

func (err ExitCode) Error() string {
	return err.Message
}
