package errors

import (
	stderr "errors"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundUUID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	err := fmt.Errorf("loading session: %w", &UUIDNotFoundError{UUID: id})

	got, ok := NotFoundUUID(err)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = NotFoundUUID(New("unrelated"))
	assert.False(t, ok)
}

func TestIsProjectNotFound(t *testing.T) {
	err := fmt.Errorf("opening: %w", &ProjectNotFoundError{UUID: uuid.Must(uuid.NewV4())})
	assert.True(t, IsProjectNotFound(err))
	assert.False(t, IsProjectNotFound(New("other")))
}

func TestGenerationErrorUnwraps(t *testing.T) {
	cause := New("upstream timeout")
	err := fmt.Errorf("submitting: %w", &GenerationError{Cause: cause})

	assert.True(t, IsGenerationError(err))
	assert.True(t, stderr.Is(err, cause))
}

func TestDocumentSizeLimitError(t *testing.T) {
	document := "<html><body>too big</body></html>"
	err := &DocumentSizeLimitError{Size: len(document)}

	assert.Equal(t, len(document), err.Size)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", len(document)))
}

func TestIsBadRequest(t *testing.T) {
	assert.True(t, IsBadRequest(fmt.Errorf("wrapped: %w", ErrEmptyInstruction)))
	assert.True(t, IsBadRequest(ErrNoSelection))
	assert.False(t, IsBadRequest(ErrGenerationInFlight))
}
