package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrEmptyInstruction reports that an instruction was empty after trimming.
	ErrEmptyInstruction = New("instruction is empty")
	// ErrGenerationInFlight reports that a generation is already outstanding
	// for the session. Submissions are refused, never queued.
	ErrGenerationInFlight = New("a generation is already in flight")
	// ErrNoSelection reports that an element operation arrived with nothing
	// selected.
	ErrNoSelection = New("no element is selected")
	// ErrTemplateReadOnly reports a write against a built-in template.
	ErrTemplateReadOnly = New("template projects are read-only")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, ErrEmptyInstruction) || stderr.Is(e, ErrNoSelection) || stderr.Is(e, ErrTemplateReadOnly)
}
