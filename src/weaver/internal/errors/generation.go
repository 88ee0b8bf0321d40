package errors

import (
	stderr "errors"
	"fmt"
)

// GenerationError wraps a failed or unusable response from the generation
// collaborator. It never escapes the orchestrator boundary; callers convert
// it into an assistant chat turn and leave the document unchanged.
type GenerationError struct {
	Cause error
}

// Error is an implementation of the error interface.
func (g *GenerationError) Error() string {
	if g.Cause == nil {
		return "generation failed"
	}
	return fmt.Sprintf("generation failed: %v", g.Cause)
}

// Unwrap exposes the underlying cause.
func (g *GenerationError) Unwrap() error {
	return g.Cause
}

// IsGenerationError reports whether a GenerationError is part of the error
// chain.
func IsGenerationError(e error) bool {
	var ge *GenerationError
	return stderr.As(e, &ge)
}

// DocumentSizeLimitError indicates a document above the configured limit.
type DocumentSizeLimitError struct {
	Size int
}

// Error is an implementation of the error interface.
func (d *DocumentSizeLimitError) Error() string {
	return fmt.Sprintf("document size %d exceeds the configured limit", d.Size)
}
